package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/paisa/internal/cli"
	"github.com/Veraticus/paisa/internal/common"
	"github.com/Veraticus/paisa/internal/config"
	"github.com/Veraticus/paisa/internal/model"
	"github.com/Veraticus/paisa/internal/payment"
	"github.com/Veraticus/paisa/internal/upi"
)

func payCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Record expense and loan payments",
	}

	cmd.AddCommand(payExpenseCmd())
	cmd.AddCommand(payLoanCmd())

	return cmd
}

func payExpenseCmd() *cobra.Command {
	var (
		offline bool
		qrLink  string
	)

	cmd := &cobra.Command{
		Use:   "expense <category> <amount>",
		Short: "Pay an expense from a category",
		Long: `Record an expense against a category. Online payments (the default)
hand off to your UPI app after recording; pass a scanned UPI link with
--qr to open it with the amount filled in, or omit it to open the
configured payment app directly. Pass --offline for cash payments.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPayment(cmd, args[0], args[1], offline, false, qrLink)
		},
	}

	cmd.Flags().BoolVar(&offline, "offline", false, "Record a cash payment without the UPI hand-off")
	cmd.Flags().StringVar(&qrLink, "qr", "", "Scanned UPI payment link to open")

	return cmd
}

func payLoanCmd() *cobra.Command {
	var (
		offline bool
		qrLink  string
	)

	cmd := &cobra.Command{
		Use:   "loan <category> <amount>",
		Short: "Pay a loan installment from a category",
		Long:  `Record a loan payment sourced from the given category. The payment grows the loan balance instead of debiting the category.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPayment(cmd, args[0], args[1], offline, true, qrLink)
		},
	}

	cmd.Flags().BoolVar(&offline, "offline", false, "Record a cash payment without the UPI hand-off")
	cmd.Flags().StringVar(&qrLink, "qr", "", "Scanned UPI payment link to open")

	return cmd
}

func runPayment(cmd *cobra.Command, category, amount string, offline, isLoan bool, qrLink string) error {
	client, cfg, err := newAPIClient()
	if err != nil {
		return err
	}

	kind := model.PaymentOnline
	if offline {
		kind = model.PaymentOffline
	}
	flow := payment.New(kind, isLoan)

	categories, err := client.GetCategories(cmd.Context(), "")
	if err != nil {
		return fmt.Errorf("%s", common.SurfaceMessage(err, "Request failed"))
	}
	flow.SetFetched(categories)

	intent, err := flow.Submit(category, amount)
	if err != nil {
		return fmt.Errorf("%s", common.SurfaceMessage(err, "Invalid payment"))
	}

	msg, err := payment.Dispatch(cmd.Context(), client, intent)
	if err != nil {
		flow.HandleResult(err)
		return fmt.Errorf("%s", common.SurfaceMessage(err, "Request failed"))
	}

	if msg == "" {
		msg = "Payment recorded"
	}
	fmt.Println(cli.SuccessStyle.Render("✓ " + msg))

	if flow.HandleResult(nil) == payment.StageScan {
		return openPaymentApp(cfg, intent, qrLink)
	}
	return nil
}

// openPaymentApp completes an online payment by launching the UPI link
// or, without one, the configured payment application.
func openPaymentApp(cfg config.Config, intent model.PaymentIntent, qrLink string) error {
	scanner := upi.NewScanner(intent.RawAmount(), cfg.Currency, cfg.PaymentApp, upi.OSLauncher{}, nil)

	if qrLink == "" {
		fmt.Println(cli.InfoStyle.Render("Opening payment app..."))
		if err := scanner.Fallback(); err != nil {
			return fmt.Errorf("%s", common.SurfaceMessage(err, "Can't open the payment app"))
		}
		return nil
	}

	link, err := scanner.HandleDecode(qrLink)
	if err != nil {
		return fmt.Errorf("%s", common.SurfaceMessage(err, "Invalid QR Code"))
	}
	fmt.Println(cli.InfoStyle.Render("Opening " + link))
	return nil
}
