package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sravanipallapu19/healthComp/client"
)

func newRegisterCmd(g *globals) *cobra.Command {
	var req client.RegisterRequest
	var displayName string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := g.client()
			if err != nil {
				return err
			}
			if displayName != "" {
				req.DisplayName = &displayName
			}
			u, err := c.Register(cmd.Context(), req)
			if err != nil {
				return err
			}
			return g.print(u)
		},
	}
	cmd.Flags().StringVarP(&req.Email, "email", "e", "", "Email (required)")
	cmd.Flags().StringVarP(&req.Password, "password", "p", "", "Password (required)")
	cmd.Flags().StringVarP(&displayName, "name", "n", "", "Display name")
	cmd.Flags().StringVar(&req.TimeZone, "tz", "", "IANA time zone, default UTC")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLoginCmd(g *globals) *cobra.Command {
	var email, password string
	var quiet bool
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and print a bearer token",
		Long:  "Sign in and print a bearer token. Export it as JOURNALCTL_TOKEN for later commands.",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := g.client()
			if err != nil {
				return err
			}
			res, err := c.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			if quiet {
				_, err = fmt.Fprintln(g.out, res.Token)
				return err
			}
			return g.print(res)
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "Email (required)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (required)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print only the token")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
