package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/estoque-api/internal/interfaces/http"
	"github.com/jhoicas/estoque-api/pkg/config"
)

func newShowCmd(a *app) *cobra.Command {
	var (
		fromStr string
		toStr   string
		pdfPath string
	)

	cmd := &cobra.Command{
		Use:   "show <productID>",
		Short: "Muestra el kardex de un producto",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.sessions.Current() == nil && a.cfg.App.Source == config.SourceERP {
				return fmt.Errorf("%w: ejecute 'kardex login <usuario>'", domain.ErrNoSession)
			}
			r, err := apphttp.ParseDateRange(fromStr, toStr)
			if err != nil {
				return err
			}
			k, err := a.kardex.Load(cmd.Context(), args[0], r)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderKardex(k))

			if pdfPath != "" {
				doc, err := pdf.NewMarotoPDFGenerator().GenerateKardexPDF(cmd.Context(), k)
				if err != nil {
					return err
				}
				if err := os.WriteFile(pdfPath, doc, 0o644); err != nil {
					return fmt.Errorf("escribir %s: %w", pdfPath, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("PDF guardado en "+pdfPath))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fromStr, "from", "", "desde (YYYY-MM-DD, inclusivo)")
	cmd.Flags().StringVar(&toStr, "to", "", "hasta (YYYY-MM-DD, inclusivo)")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "además guarda el kardex en PDF")
	return cmd
}
