package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newLoginCmd(a *app) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <usuario>",
		Short: "Inicia sesión en el backend ERP y guarda la sesión",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				err := huh.NewForm(
					huh.NewGroup(
						huh.NewInput().
							Title("Senha de " + args[0]).
							EchoMode(huh.EchoModePassword).
							Value(&password),
					),
				).Run()
				if err != nil {
					return err
				}
			}
			s, err := a.sessions.Login(cmd.Context(), args[0], password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render(fmt.Sprintf("✓ sesión iniciada: %s (%s)", s.User.Username, s.User.Role)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "contraseña (si falta se pide de forma interactiva)")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Cierra la sesión y borra la sesión guardada",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.sessions.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("✓ sesión cerrada"))
			return nil
		},
	}
}
