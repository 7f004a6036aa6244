package main

import (
	"os"
	"time"

	"pet-care-tracker/internal/platform/httpclient"

	"github.com/spf13/cobra"
)

const defaultServer = "http://localhost:8080"

// app es el estado compartido por los subcomandos (flags globales + cliente).
type app struct {
	server  string
	timeout time.Duration
	client  *httpclient.Client
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "petctl",
		Short: "Pet care tracker CLI",
		Long: `petctl habla con la API de pet-care-tracker.

Muestra mascotas y recordatorios (hoy, próximos días, calendario) y permite
marcar recordatorios como hechos.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := httpclient.New(a.server, a.timeout)
			if err != nil {
				return err
			}
			a.client = c
			return nil
		},
	}

	server := os.Getenv("PETCARE_URL")
	if server == "" {
		server = defaultServer
	}
	root.PersistentFlags().StringVar(&a.server, "server", server, "API base URL (or set PETCARE_URL env)")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", httpclient.DefaultTimeout, "Request timeout")

	root.AddCommand(
		newPetsCmd(a),
		newTodayCmd(a),
		newUpcomingCmd(a),
		newToggleCmd(a),
		newCalendarCmd(a),
	)
	return root
}
