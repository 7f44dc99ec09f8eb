package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"folio/internal/client"
	"folio/internal/version"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "folio CLI - portfolio contact form client",
	Long: `folio CLI drives the portfolio contact form pipeline from the command
line. It runs the same submission state machine as the page: acquire a
verification token, post the message, report the outcome.`,
}

// staticTokenSource returns a pre-issued verification token. The CLI is a
// pipeline tester, not a browser; it cannot run the challenge widget, so
// the token is supplied by the operator.
type staticTokenSource struct {
	token string
}

func (s staticTokenSource) Token(_ context.Context, _ string) (string, error) {
	if s.token == "" {
		return "", fmt.Errorf("no verification token provided (use --token)")
	}
	return s.token, nil
}

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a contact message",
	Long: `Submit a contact message to a running folio server.

Example:
  folio submit --name "Ada Lovelace" --email ada@example.com \
    --company "Analytical Engines Ltd" --message "Hello!" \
    --token <recaptcha-token>`,
	Run: func(cmd *cobra.Command, args []string) {
		endpoint, _ := cmd.Flags().GetString("endpoint")
		siteKey, _ := cmd.Flags().GetString("site-key")
		token, _ := cmd.Flags().GetString("token")
		if siteKey == "" {
			siteKey = os.Getenv("RECAPTCHA_SITE_KEY")
		}

		form := client.NewForm(endpoint, siteKey, staticTokenSource{token: token})

		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		company, _ := cmd.Flags().GetString("company")
		message, _ := cmd.Flags().GetString("message")
		form.SetName(name)
		form.SetEmail(email)
		form.SetCompany(company)
		form.SetMessage(message)

		s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
		s.Suffix = " Sending message..."
		s.Start()

		err := form.Submit(cmd.Context())
		s.Stop()

		if err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s\n", form.StatusMessage())
			os.Exit(1)
		}
		fmt.Println("✓ " + form.StatusMessage())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Get().String())
	},
}

func init() {
	submitCmd.Flags().String("endpoint", "http://localhost:8080/api/contact", "Contact endpoint URL")
	submitCmd.Flags().String("site-key", "", "reCAPTCHA site key (defaults to RECAPTCHA_SITE_KEY)")
	submitCmd.Flags().String("token", "", "Pre-issued reCAPTCHA token")
	submitCmd.Flags().String("name", "", "Your name")
	submitCmd.Flags().String("email", "", "Your email address")
	submitCmd.Flags().String("company", "", "Your company")
	submitCmd.Flags().String("message", "", "The message to send")

	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
