package cli

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/streetbites/streetbites/models"
	"github.com/streetbites/streetbites/utils"
)

func (a *App) runMenu() error {
	menu, err := a.API.GetMenu()
	if err != nil {
		return fmt.Errorf("could not load menu: %v", err)
	}

	category := ""
	for _, item := range menu {
		if item.Category != category {
			category = item.Category
			fmt.Fprintf(a.Out, "\n%s\n", category)
		}
		fmt.Fprintf(a.Out, "  %-24s %12s  %s\n",
			item.Name, utils.FormatCurrencyINR(item.Price), item.Description)
	}
	return nil
}

// runOrder builds the cart from item:qty arguments and checks out. Online
// payment is the default; -pay-later settles in person.
func (a *App) runOrder(args []string) error {
	fs := flag.NewFlagSet("order", flag.ContinueOnError)
	cachedName, cachedPhone := a.Session.Customer()
	name := fs.String("name", cachedName, "customer name")
	phone := fs.String("phone", utils.Last10(cachedPhone), "10-digit phone number")
	payLater := fs.Bool("pay-later", false, "settle in person instead of paying online")
	if err := fs.Parse(args); err != nil {
		return err
	}

	items, err := a.parseItems(fs.Args())
	if err != nil {
		return err
	}
	a.fillCart(items)

	fmt.Fprintf(a.Out, "Cart: %d items, total %s\n",
		a.Orders.CartCount(), utils.FormatCurrencyINR(a.Orders.CartTotal()))

	if *payLater {
		if !a.Orders.CheckoutPayLater(*name, *phone) {
			return fmt.Errorf("order was not placed")
		}
		fmt.Fprintln(a.Out, "Order placed. Pay at the counter when you collect it.")
		return nil
	}

	checkoutURL, ok := a.Orders.Checkout(*name, *phone)
	if !ok {
		return fmt.Errorf("order was not placed")
	}
	fmt.Fprintf(a.Out, "Order placed. Complete payment at:\n  %s\n", checkoutURL)
	return nil
}

func (a *App) runMyOrders(args []string) error {
	fs := flag.NewFlagSet("myorders", flag.ContinueOnError)
	_, cachedPhone := a.Session.Customer()
	phone := fs.String("phone", utils.Last10(cachedPhone), "10-digit phone number")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a.Orders.FetchMyOrders(*phone)
	if msg := a.Orders.MyOrdersErr(); msg != "" {
		return fmt.Errorf("%s", msg)
	}

	orders := a.Orders.MyOrders()
	if len(orders) == 0 {
		fmt.Fprintln(a.Out, "No orders found for this phone number.")
		return nil
	}

	fmt.Fprintf(a.Out, "%d orders (%d in progress)\n",
		len(orders), a.Orders.InProgressOrderCount())
	for _, order := range orders {
		printOrder(a.Out, order)
	}
	return nil
}

func (a *App) runTrack(args []string) error {
	fs := flag.NewFlagSet("track", flag.ContinueOnError)
	id := fs.String("id", "", "order id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("-id is required")
	}

	backend, err := a.API.OrderDetail(*id)
	if err != nil {
		return fmt.Errorf("could not fetch order: %v", err)
	}
	printOrder(a.Out, backend.ToOrder())
	return nil
}

func printOrder(out io.Writer, order models.Order) {
	placed := time.UnixMilli(order.Timestamp).Format("02 Jan 15:04")
	fmt.Fprintf(out, "\n#%s  %s  [%s]  %s\n",
		order.Token, order.CustomerName, order.Status, placed)
	for _, item := range order.Items {
		fmt.Fprintf(out, "  %dx %-22s %12s\n",
			item.Quantity, item.Name, utils.FormatCurrencyINR(item.Price*float64(item.Quantity)))
	}
	fmt.Fprintf(out, "  total %s", utils.FormatCurrencyINR(order.Total))
	if order.AmountDue > 0 {
		fmt.Fprintf(out, "  (due %s)", utils.FormatCurrencyINR(order.AmountDue))
	}
	fmt.Fprintln(out)
}
