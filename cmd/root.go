package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/lbryio/base58.go/base58"
	"github.com/lbryio/base58.go/extras/errors"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	decodeMode   bool
	alphabetName string
)

// RootCmd converts between raw bytes on stdin and base58 text on stdout.
var RootCmd = &cobra.Command{
	Use:   "base58",
	Short: "Encode or decode base58 data",
	Long: `Reads standard input and writes the converted form to standard output.

By default raw bytes are encoded to base58 text. With --decode, base58
text is decoded back to raw bytes.`,
	Example: `  printf 'Hello, World!' | base58
  printf '72k1xXWG59fYdzSNoA' | base58 --decode
  printf 'Hello' | base58 --alphabet ripple`,
	Args:          cobra.NoArgs,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.Flags().BoolVarP(&decodeMode, "decode", "d", false, "decode base58 text on stdin to raw bytes")
	RootCmd.Flags().StringVarP(&alphabetName, "alphabet", "a", "bitcoin", "alphabet to use: bitcoin (btc), ripple (xrp) or flickr")
}

// Execute runs the root command and exits the process on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Debugln(errors.FullTrace(err))
		log.Errorln(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	alphabet, err := base58.ParseAlphabet(alphabetName)
	if err != nil {
		return err
	}

	input, err := ioutil.ReadAll(cmd.InOrStdin())
	if err != nil {
		return errors.Prefix("reading stdin", err)
	}

	if decodeMode {
		return runDecode(cmd, input, alphabet)
	}
	return runEncode(cmd, input, alphabet)
}

func runEncode(cmd *cobra.Command, input []byte, alphabet base58.Alphabet) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), base58.EncodeAlphabet(input, alphabet))
	return errors.Err(err)
}

// runDecode expects base58 text on stdin. Surrounding whitespace, such as
// the newline a shell pipeline usually appends, is ignored. The decoded
// bytes are written as-is, with no trailing newline.
func runDecode(cmd *cobra.Command, input []byte, alphabet base58.Alphabet) error {
	if !utf8.Valid(input) {
		return errors.Err("input is not valid utf-8 text")
	}

	decoded, err := base58.DecodeAlphabet(strings.TrimSpace(string(input)), alphabet)
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(decoded)
	return errors.Err(err)
}
