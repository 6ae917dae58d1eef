package main

import (
	"fmt"
	"os"

	"github.com/ideaboard/core/board/users"
	"github.com/ideaboard/core/core/config"
	"github.com/ideaboard/core/deps"
	"github.com/ideaboard/core/modules/api"
	"github.com/spf13/cobra"
)

func main() {
	var server api.Module

	cmdAPI := &cobra.Command{
		Use:   "api",
		Short: "Starts API web server",
		Long: `Starts the board API web server listening
        on the specified port.
        `,
		Run: func(cmd *cobra.Command, args []string) {
			deps.Bootstrap()
			config.Bootstrap()

			port := ":3200"
			if len(args) == 1 {
				port = args[0]
			}

			if *deps.ShouldSeed {
				deps.Container.Log().Info("users collection is empty; run the seed command to create the first admin")
			}

			server.Run(port)
		},
	}

	cmdSeed := &cobra.Command{
		Use:   "seed [email] [username] [password]",
		Short: "Seeds the first admin account",
		Long: `Creates the board's first account and grants
        it moderation rights.
        `,
		Args: cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			deps.Bootstrap()
			config.Bootstrap()

			usr, err := users.SignUp(deps.Container, args[0], args[1], args[2])
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			if err := users.MakeAdmin(deps.Container, usr.Id); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			fmt.Println("admin account ready:", usr.Id.Hex())
		},
	}

	rootCmd := &cobra.Command{Use: "ideaboard"}
	rootCmd.AddCommand(cmdAPI)
	rootCmd.AddCommand(cmdSeed)
	rootCmd.Execute()
}
