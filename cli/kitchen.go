package cli

import (
	"flag"
	"fmt"

	"github.com/streetbites/streetbites/models"
	"github.com/streetbites/streetbites/utils"
)

func (a *App) runKitchen(args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list":
		return a.kitchenList()
	case "paid":
		return a.kitchenTransition(args[1:], a.Orders.MarkAsPaid, "marked as paid")
	case "serve":
		return a.kitchenTransition(args[1:], a.Orders.CompleteOrder, "marked as served")
	case "cancel":
		return a.kitchenTransition(args[1:], a.Orders.CancelOrder, "cancelled")
	case "create":
		return a.kitchenCreate(args[1:])
	case "add-items":
		return a.kitchenAddItems(args[1:])
	default:
		return fmt.Errorf("unknown kitchen command %q", args[0])
	}
}

func (a *App) kitchenList() error {
	a.Orders.FetchKitchenOrders()
	if msg := a.Orders.Err(); msg != "" {
		return fmt.Errorf("%s", msg)
	}

	orders := a.Orders.KitchenOrders()
	if len(orders) == 0 {
		fmt.Fprintln(a.Out, "No orders yet today.")
		return nil
	}

	fmt.Fprintf(a.Out, "Today's orders: %d\n", len(orders))
	for _, order := range orders {
		served := " "
		if order.Served {
			served = "x"
		}
		fmt.Fprintf(a.Out, "\n[%s] #%s  %s (%s)  [%s]  id=%s\n",
			served, order.Token, order.CustomerName,
			utils.Last10(order.CustomerPhone), order.Status, order.ID)
		for _, item := range order.Items {
			fmt.Fprintf(a.Out, "      %dx %s\n", item.Quantity, item.Name)
		}
		fmt.Fprintf(a.Out, "      due %s\n", utils.FormatCurrencyINR(order.AmountDue))
	}
	return nil
}

func (a *App) kitchenTransition(args []string, op func(string) bool, verb string) error {
	fs := flag.NewFlagSet("kitchen", flag.ContinueOnError)
	id := fs.String("id", "", "order id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("-id is required")
	}

	// Load the board first so the transition has an order to patch.
	a.Orders.FetchKitchenOrders()

	if !op(*id) {
		return fmt.Errorf("order %s was not %s", *id, verb)
	}
	fmt.Fprintf(a.Out, "Order %s %s.\n", *id, verb)
	return nil
}

// kitchenCreate is the staff-side manual order entry; always pay-later.
func (a *App) kitchenCreate(args []string) error {
	fs := flag.NewFlagSet("kitchen create", flag.ContinueOnError)
	name := fs.String("name", "", "customer name")
	phone := fs.String("phone", "", "10-digit phone number")
	if err := fs.Parse(args); err != nil {
		return err
	}

	items, err := a.parseItems(fs.Args())
	if err != nil {
		return err
	}
	a.fillCart(items)

	if !a.Orders.CheckoutPayLater(*name, *phone) {
		return fmt.Errorf("order was not created")
	}
	fmt.Fprintln(a.Out, "Order created.")
	return nil
}

// kitchenAddItems appends items to an existing order by replacing its full
// line-item set. The pending-update snapshot persists across invocations so
// an interrupted flow can be retried with the same order.
func (a *App) kitchenAddItems(args []string) error {
	fs := flag.NewFlagSet("kitchen add-items", flag.ContinueOnError)
	id := fs.String("id", "", "order id (defaults to the pending update)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	orderID := *id
	var current models.Order
	if orderID == "" {
		pendingID, snapshot, ok := a.Session.PendingUpdate()
		if !ok {
			return fmt.Errorf("-id is required (no pending update found)")
		}
		orderID = pendingID
		current = snapshot
		fmt.Fprintf(a.Out, "Resuming update of order #%s\n", current.Token)
	} else {
		backend, err := a.API.OrderDetail(orderID)
		if err != nil {
			return fmt.Errorf("could not fetch order: %v", err)
		}
		current = backend.ToOrder()
		if current.Done() {
			return fmt.Errorf("order #%s is already done", current.Token)
		}
		if err := a.Session.SavePendingUpdate(orderID, current); err != nil {
			utils.ErrorLogger.Printf("Could not save pending update: %v", err)
		}
	}

	added, err := a.parseItems(fs.Args())
	if err != nil {
		return err
	}

	merged := mergeItems(current.Items, added)
	customer := models.BackendCustomer{
		Name:  current.CustomerName,
		Phone: current.CustomerPhone,
	}
	if !a.Orders.UpdateOrderItems(orderID, customer, merged) {
		return fmt.Errorf("order %s was not updated", orderID)
	}

	if err := a.Session.ClearPendingUpdate(); err != nil {
		utils.ErrorLogger.Printf("Could not clear pending update: %v", err)
	}
	fmt.Fprintf(a.Out, "Order #%s updated.\n", current.Token)
	return nil
}

// mergeItems folds newly added cart items into an existing line-item set,
// bumping quantities for items already on the order.
func mergeItems(existing []models.OrderItem, added []models.CartItem) []models.OrderItem {
	merged := make([]models.OrderItem, len(existing))
	copy(merged, existing)

	for _, add := range added {
		found := false
		for i := range merged {
			if merged[i].Name == add.Name {
				merged[i].Quantity += add.Quantity
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, models.OrderItem{
				Name:     add.Name,
				Quantity: add.Quantity,
				Price:    add.Price,
			})
		}
	}
	return merged
}
