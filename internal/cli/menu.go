package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aklbites/jamwhopper/internal/orders"
	"github.com/aklbites/jamwhopper/internal/whopper"
)

// Menu drives the numbered console menu over the coordinator.
type Menu struct {
	whopper *whopper.Whopper
	in      *bufio.Scanner
	out     io.Writer
}

func NewMenu(w *whopper.Whopper, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		whopper: w,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run loops until the operator exits or input is exhausted.
func (m *Menu) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(m.out, Header("Traffic Jam Whopper System"))
		fmt.Fprintln(m.out, Subheader("Menu"))
		fmt.Fprintln(m.out, "1. Check for traffic jams")
		fmt.Fprintln(m.out, "2. Create an order")
		fmt.Fprintln(m.out, "3. View all orders")
		fmt.Fprintln(m.out, "4. Cancel an order")
		fmt.Fprintln(m.out, "5. Exit")

		choice, ok := m.prompt("Enter your choice: ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			m.checkForTrafficJams(ctx)
		case "2":
			if ok := m.createOrder(ctx); !ok {
				return nil
			}
		case "3":
			m.listOrders(ctx)
		case "4":
			if ok := m.cancelOrder(ctx); !ok {
				return nil
			}
		case "5":
			fmt.Fprintln(m.out, Wrap("Thank you for using the Traffic Jam Whopper System. Goodbye!", lineWidth))
			return nil
		default:
			fmt.Fprintln(m.out, Wrap("Invalid choice. Please try again.", lineWidth))
		}

		if _, ok := m.prompt("\nPress Enter to continue..."); !ok {
			return nil
		}
	}
}

func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) checkForTrafficJams(ctx context.Context) {
	jams, err := m.whopper.CheckForTrafficJams(ctx)
	if err != nil {
		fmt.Fprintf(m.out, "Traffic jam detection failed: %v\n", err)
		return
	}

	fmt.Fprintln(m.out, Subheader("Traffic Jam Detection Results"))
	if len(jams) == 0 {
		fmt.Fprintln(m.out, "No traffic jams detected at this time.")
		return
	}

	rows := make([][]string, len(jams))
	for i, location := range jams {
		rows[i] = []string{location}
	}
	fmt.Fprintln(m.out, Table([]string{"Location"}, rows, []int{lineWidth}))
}

func (m *Menu) createOrder(ctx context.Context) bool {
	customerName, ok := m.prompt("Enter customer name: ")
	if !ok {
		return false
	}
	if customerName == "" {
		fmt.Fprintln(m.out, Wrap("Customer name is required.", lineWidth))
		return true
	}
	location, ok := m.prompt("Enter location: ")
	if !ok {
		return false
	}

	order, err := m.whopper.CreateOrder(ctx, customerName, location)
	if errors.Is(err, whopper.ErrNoTrafficJam) {
		fmt.Fprintf(m.out, "Cannot create order. No traffic jam detected at %s.\n", location)
		return true
	}
	if err != nil {
		fmt.Fprintf(m.out, "Failed to create order: %v\n", err)
		return true
	}

	fmt.Fprintln(m.out, Subheader("Order Created Successfully"))
	fmt.Fprintln(m.out, Wrap(fmt.Sprintf("Order ID: %d", order.ID), lineWidth))
	fmt.Fprintln(m.out, Wrap(fmt.Sprintf("Customer: %s", order.CustomerName), lineWidth))
	fmt.Fprintln(m.out, Wrap(fmt.Sprintf("Location: %s", order.Location), lineWidth))
	fmt.Fprintln(m.out, Wrap(fmt.Sprintf("Status: %s", order.Status), lineWidth))
	return true
}

func (m *Menu) listOrders(ctx context.Context) {
	all, err := m.whopper.Orders(ctx)
	if err != nil {
		fmt.Fprintf(m.out, "Failed to list orders: %v\n", err)
		return
	}

	fmt.Fprintln(m.out, Subheader("All Orders"))
	if len(all) == 0 {
		fmt.Fprintln(m.out, "No orders found.")
		return
	}

	rows := make([][]string, len(all))
	for i, order := range all {
		rows[i] = []string{
			strconv.FormatInt(order.ID, 10),
			order.CustomerName,
			order.Location,
			order.Status,
		}
	}
	fmt.Fprintln(m.out, Table(
		[]string{"ID", "Customer", "Location", "Status"},
		rows,
		[]int{6, 20, 30, 10},
	))
}

func (m *Menu) cancelOrder(ctx context.Context) bool {
	input, ok := m.prompt("Enter order ID to cancel: ")
	if !ok {
		return false
	}
	id, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		fmt.Fprintln(m.out, Wrap("Order ID must be a number.", lineWidth))
		return true
	}

	order, err := m.whopper.CancelOrder(ctx, id)
	switch {
	case errors.Is(err, orders.ErrAlreadyCancelled), errors.Is(err, orders.ErrOrderNotFound):
		fmt.Fprintln(m.out, Wrap("Failed to cancel order. Please check the order ID and try again.", lineWidth))
	case err != nil:
		fmt.Fprintf(m.out, "Failed to cancel order: %v\n", err)
	default:
		fmt.Fprintln(m.out, Subheader("Order Cancelled"))
		fmt.Fprintln(m.out, Wrap(fmt.Sprintf("Order ID %d has been cancelled.", order.ID), lineWidth))
	}
	return true
}
