package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"krishisahay/config"
	"krishisahay/entities"
	"krishisahay/pkg/advisory"
	"krishisahay/pkg/chat"
	"krishisahay/pkg/i18n"
	"krishisahay/pkg/market"
)

var (
	askPanel string
	askLang  string
	trLang   string
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Answer a question with the advisory responder",
	Long: `Answer a question the way the dashboard chat panels do, without the
simulated wait and without storing the exchange.

Example:
  krishisahay ask --panel verified "How should I prepare for rain season?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

var translateCmd = &cobra.Command{
	Use:   "translate <key>",
	Short: "Look up a dashboard string",
	Args:  cobra.ExactArgs(1),
	RunE:  runTranslate,
}

var exportMarketCmd = &cobra.Command{
	Use:   "export-market <file.xlsx>",
	Short: "Write one round of generated market quotes to a workbook",
	Args:  cobra.ExactArgs(1),
	RunE:  runExportMarket,
}

func init() {
	askCmd.Flags().StringVarP(&askPanel, "panel", "p", string(entities.PanelExpert), "Responder panel: expert or verified")
	askCmd.Flags().StringVarP(&askLang, "lang", "l", "", "Answer language (default: DEFAULT_LANG)")
	translateCmd.Flags().StringVarP(&trLang, "lang", "l", "", "Language code (default: DEFAULT_LANG)")
}

func language(flag string, cfg config.AppConfig) (i18n.Language, error) {
	if flag == "" {
		return cfg.DefaultLang, nil
	}
	l, ok := i18n.ParseLanguage(flag)
	if !ok {
		return "", fmt.Errorf("unsupported language %q", flag)
	}
	return l, nil
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	lang, err := language(askLang, cfg)
	if err != nil {
		return err
	}
	p, err := chat.ParsePanel(askPanel)
	if err != nil {
		return err
	}
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return chat.ErrEmptyMessage
	}

	r := advisory.NewExpert()
	if p == entities.PanelVerified {
		r = advisory.NewVerified()
	}
	fmt.Fprintln(cmd.OutOrStdout(), r.Respond(text, lang))
	if src := r.Source(); src != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "\n(source: %s)\n", src)
	}
	return nil
}

func runTranslate(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	lang, err := language(trLang, cfg)
	if err != nil {
		return err
	}
	tr, err := translator(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), tr.Translate(args[0], lang))
	return nil
}

func runExportMarket(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	gen, err := generator(cfg)
	if err != nil {
		return err
	}
	f, err := os.Create(args[0])
	if err != nil {
		return err
	}
	if err := market.WriteQuotesXLSX(f, gen.MarketPrices()); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d quotes to %s\n", len(gen.Catalog()), args[0])
	return nil
}
