package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/streetbites/streetbites/client"
	"github.com/streetbites/streetbites/config"
	"github.com/streetbites/streetbites/models"
	"github.com/streetbites/streetbites/session"
	"github.com/streetbites/streetbites/store"
	"github.com/streetbites/streetbites/utils"
)

// App wires the config, API client, order store and session cache behind the
// subcommands. Everything is constructed here and passed down; no ambient
// state.
type App struct {
	Config  *config.Config
	API     *client.Client
	Orders  *store.Store
	Session *session.Store
	Out     io.Writer
}

func NewApp(cfg *config.Config, out io.Writer) (*App, error) {
	sess, err := session.Open(cfg.CacheDBPath)
	if err != nil {
		return nil, fmt.Errorf("error opening session cache: %v", err)
	}

	api := client.New(cfg.BackendURL, cfg.HTTPTimeout)
	if token, ok := sess.Token(); ok {
		if utils.TokenExpired(token) {
			utils.InfoLogger.Println("Stored login has expired, please log in again")
			_ = sess.ClearToken()
		} else {
			api.SetToken(token)
		}
	}

	app := &App{
		Config:  cfg,
		API:     api,
		Session: sess,
		Out:     out,
	}
	app.Orders = store.New(api, func(title, message string) {
		fmt.Fprintf(out, "%s: %s\n", title, message)
	})
	app.Orders.SetCustomerCache(sess)
	return app, nil
}

func (a *App) Run(args []string) error {
	if len(args) == 0 {
		a.usage()
		return nil
	}

	switch args[0] {
	case "menu":
		return a.runMenu()
	case "order":
		return a.runOrder(args[1:])
	case "myorders":
		return a.runMyOrders(args[1:])
	case "track":
		return a.runTrack(args[1:])
	case "kitchen":
		return a.runKitchen(args[1:])
	case "inventory":
		return a.runInventory(args[1:])
	case "staff":
		return a.runStaff(args[1:])
	case "branches":
		return a.runBranches(args[1:])
	case "dashboard":
		return a.runDashboard(args[1:])
	case "report":
		return a.runReport(args[1:])
	case "login":
		return a.runLogin(args[1:])
	case "register":
		return a.runRegister(args[1:])
	case "logout":
		return a.runLogout()
	case "mockd":
		return a.runMockd()
	case "help", "-h", "--help":
		a.usage()
		return nil
	default:
		a.usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (a *App) usage() {
	fmt.Fprint(a.Out, `streetbites - food ordering terminal client

Customer commands:
  menu                      browse the menu
  order [flags] item:qty..  build a cart and place an order
  myorders [-phone N]       list your orders
  track -id ID              show one order

Kitchen commands (staff):
  kitchen list|paid|serve|cancel|create|add-items
  inventory | staff | branches | dashboard | report
  login | register | logout

Development:
  mockd                     run the fake backend locally
`)
}

// parseItems turns "Vada Pav:2" arguments into cart additions, resolving
// names against the live menu.
func (a *App) parseItems(args []string) ([]models.CartItem, error) {
	menu, err := a.API.GetMenu()
	if err != nil {
		return nil, fmt.Errorf("could not load menu: %v", err)
	}

	byName := make(map[string]models.MenuItem, len(menu))
	for _, item := range menu {
		byName[strings.ToLower(item.Name)] = item
	}

	var items []models.CartItem
	for _, arg := range args {
		name := arg
		qty := 1
		if idx := strings.LastIndex(arg, ":"); idx >= 0 {
			name = arg[:idx]
			qty, err = strconv.Atoi(arg[idx+1:])
			if err != nil || qty < 1 {
				return nil, fmt.Errorf("invalid quantity in %q", arg)
			}
		}
		item, ok := byName[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("%q is not on the menu", name)
		}
		items = append(items, models.CartItem{MenuItem: item, Quantity: qty})
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("no items given, expected item:qty arguments")
	}
	return items, nil
}

func (a *App) fillCart(items []models.CartItem) {
	a.Orders.ClearCart()
	for _, item := range items {
		a.Orders.AddToCart(item.MenuItem)
		if item.Quantity > 1 {
			a.Orders.UpdateQuantity(item.ID, item.Quantity)
		}
	}
}

func (a *App) requireBranch(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if profile, ok := a.Session.Profile(); ok {
		return profile.Branch
	}
	return ""
}
