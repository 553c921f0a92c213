package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/estoque-api/internal/application/kardex"
	apphttp "github.com/jhoicas/estoque-api/internal/interfaces/http"
)

func newWatchCmd(a *app) *cobra.Command {
	var (
		fromStr string
		toStr   string
		every   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch <productID>",
		Short: "Refresca el kardex periódicamente hasta Ctrl+C",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if every < time.Second {
				return fmt.Errorf("--every debe ser al menos 1s")
			}
			r, err := apphttp.ParseDateRange(fromStr, toStr)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			tracker := kardex.NewTracker(a.kardex)
			installed := make(chan kardex.View, 1)

			// Cada tick lanza una carga; si una lenta termina después de otra más nueva, el tracker la descarta.
			refresh := func() {
				go func() {
					rctx, cancel := context.WithTimeout(ctx, every*3)
					defer cancel()
					if v, ok := tracker.Refresh(rctx, args[0], r); ok {
						select {
						case installed <- v:
						default:
						}
					}
				}()
			}

			ticker := time.NewTicker(every)
			defer ticker.Stop()
			refresh()
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					refresh()
				case <-installed:
					v := tracker.Current()
					fmt.Fprint(cmd.OutOrStdout(), "\033[H\033[2J")
					if v.Err != nil {
						fmt.Fprintln(cmd.OutOrStdout(), errorStyle.Render("kardex indeterminado: "+v.Err.Error()))
						continue
					}
					fmt.Fprintln(cmd.OutOrStdout(), renderKardex(v.Response))
					fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render(fmt.Sprintf("actualizado %s · cada %s · Ctrl+C para salir",
						time.Now().Format("15:04:05"), every)))
				}
			}
		},
	}

	cmd.Flags().StringVar(&fromStr, "from", "", "desde (YYYY-MM-DD, inclusivo)")
	cmd.Flags().StringVar(&toStr, "to", "", "hasta (YYYY-MM-DD, inclusivo)")
	cmd.Flags().DurationVar(&every, "every", 30*time.Second, "intervalo de refresco")
	return cmd
}
