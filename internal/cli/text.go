package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/avivilloz/commonutils/internal/textutil"
)

func textCommands(st *state) []*cobra.Command {
	return []*cobra.Command{
		countCmd("count-words", "Count whitespace-delimited words", textutil.CountWords),
		countCmd("count-periods", "Count sentence-ending periods", textutil.CountSentencePeriods),
		transformCmd("remove-quotes", "Delete double quotes", textutil.RemoveQuotes),
		transformCmd("remove-newlines", "Delete line feeds", textutil.RemoveNewlines),
		transformCmd("remove-spaces", "Delete spaces", textutil.RemoveSpaces),
		transformCmd("remove-double-spaces", "Replace each double space with one space", textutil.RemoveDoubleSpaces),
		transformCmd("remove-punctuation", "Delete everything but word characters and whitespace", textutil.RemovePunctuation),
		transformCmd("remove-end-punctuation", "Trim trailing punctuation", textutil.RemoveEndPunctuation),
		transformCmd("file-name", "Convert text to a lowercase snake_case file name", textutil.StrToFileName),
		transformCmd("tag-name", "Convert text to a compact lowercase tag", textutil.StrToTagName),
		sentencesCmd(),
		formatIndexCmd(st),
	}
}

func transformCmd(use, short string, fn func(string) string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [text...]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), fn(text))
			return nil
		},
	}
}

func countCmd(use, short string, fn func(string) int) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [text...]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), fn(text))
			return nil
		},
	}
}

func sentencesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sentences [text...]",
		Short: "Split text into sentences, one per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			for _, s := range textutil.GetSentences(text) {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
}

func formatIndexCmd(st *state) *cobra.Command {
	var decimals int

	c := &cobra.Command{
		Use:   "format-index [--] <n>",
		Short: "Zero-pad an index (put negative indexes after --)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("index must be an integer, got: %s", args[0])
			}
			if !cmd.Flags().Changed("decimals") {
				decimals = st.cfg.Decimals()
			}
			fmt.Fprintln(cmd.OutOrStdout(), textutil.FormatIndex(n, decimals))
			return nil
		},
	}

	c.Flags().IntVarP(&decimals, "decimals", "d", textutil.DefaultIndexDecimals, "minimum number of digits (defaults to COMMONUTILS_INDEX_DECIMALS)")
	return c
}
