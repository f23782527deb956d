package cli

import (
	"flag"
	"fmt"
	"time"

	"github.com/streetbites/streetbites/models"
	"github.com/streetbites/streetbites/utils"
)

func (a *App) runInventory(args []string) error {
	fs := flag.NewFlagSet("inventory", flag.ContinueOnError)
	branch := fs.String("branch", "", "branch name (defaults to your profile's branch)")
	add := fs.String("add", "", "ingredient name to add")
	qty := fs.Float64("qty", 0, "quantity for -add")
	unit := fs.String("unit", "", "unit for -add")
	if err := fs.Parse(args); err != nil {
		return err
	}
	branchName := a.requireBranch(*branch)

	if *add != "" {
		ing := models.Ingredient{Name: *add, Quantity: *qty, Unit: *unit}
		if err := a.API.CreateIngredient(ing); err != nil {
			return fmt.Errorf("could not add ingredient: %v", err)
		}
		fmt.Fprintf(a.Out, "Added %s.\n", *add)
	}

	ingredients, err := a.API.Ingredients(branchName)
	if err != nil {
		return fmt.Errorf("could not load inventory: %v", err)
	}
	for _, ing := range ingredients {
		fmt.Fprintf(a.Out, "  %-24s %8.1f %s\n", ing.Name, ing.Quantity, ing.Unit)
	}
	return nil
}

func (a *App) runStaff(args []string) error {
	fs := flag.NewFlagSet("staff", flag.ContinueOnError)
	branch := fs.String("branch", "", "branch name")
	add := fs.String("add", "", "staff email to add")
	name := fs.String("name", "", "staff name for -add")
	role := fs.String("role", "staff", "role for -add")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *add != "" {
		member := models.StaffMember{Name: *name, Email: *add, Role: *role}
		if err := a.API.CreateStaff(member); err != nil {
			return fmt.Errorf("could not add staff member: %v", err)
		}
		fmt.Fprintf(a.Out, "Added %s.\n", *add)
	}

	staff, err := a.API.Staff(a.requireBranch(*branch))
	if err != nil {
		return fmt.Errorf("could not load staff: %v", err)
	}
	for _, member := range staff {
		fmt.Fprintf(a.Out, "  %-20s %-28s %s\n", member.Name, member.Email, member.Role)
	}
	return nil
}

func (a *App) runBranches(args []string) error {
	fs := flag.NewFlagSet("branches", flag.ContinueOnError)
	add := fs.String("add", "", "branch name to add")
	address := fs.String("address", "", "address for -add")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *add != "" {
		if err := a.API.CreateBranch(models.Branch{Name: *add, Address: *address}); err != nil {
			return fmt.Errorf("could not add branch: %v", err)
		}
		fmt.Fprintf(a.Out, "Added %s.\n", *add)
	}

	branches, err := a.API.Branches()
	if err != nil {
		return fmt.Errorf("could not load branches: %v", err)
	}
	for _, branch := range branches {
		fmt.Fprintf(a.Out, "  %-24s %s\n", branch.Name, branch.Address)
	}
	return nil
}

func (a *App) runDashboard(args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	branch := fs.String("branch", "", "branch name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	stats, err := a.API.DashboardStats(a.requireBranch(*branch))
	if err != nil {
		return fmt.Errorf("could not load dashboard: %v", err)
	}

	fmt.Fprintf(a.Out, "Revenue today:  %s\n", utils.FormatCurrencyINR(stats.KPIs.RevenueToday))
	fmt.Fprintf(a.Out, "Orders today:   %d\n", stats.KPIs.OrdersToday)
	fmt.Fprintf(a.Out, "Average order:  %s\n", utils.FormatCurrencyINR(stats.KPIs.AvgOrder))
	fmt.Fprintf(a.Out, "Pending due:    %s\n", utils.FormatCurrencyINR(stats.KPIs.PendingDue))

	if len(stats.LowStockItems) > 0 {
		fmt.Fprintln(a.Out, "\nLow stock:")
		for _, ing := range stats.LowStockItems {
			fmt.Fprintf(a.Out, "  %-24s %8.1f %s\n", ing.Name, ing.Quantity, ing.Unit)
		}
	}
	return nil
}

func (a *App) runReport(args []string) error {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	now := time.Now()
	from := fs.String("from", now.AddDate(0, 0, -29).Format("2006-01-02"), "start date (yyyy-mm-dd)")
	to := fs.String("to", now.Format("2006-01-02"), "end date (yyyy-mm-dd)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	report, err := a.API.SalesReport(*from, *to)
	if err != nil {
		return fmt.Errorf("could not load sales report: %v", err)
	}

	fmt.Fprintf(a.Out, "Sales %s to %s\n", *from, *to)
	fmt.Fprintf(a.Out, "  revenue %s over %d orders (avg %s)\n",
		utils.FormatCurrencyINR(report.TotalRevenue), report.TotalOrders,
		utils.FormatCurrencyINR(report.AvgOrder))

	if len(report.Items) > 0 {
		fmt.Fprintln(a.Out, "\nBy item:")
		for _, row := range report.Items {
			fmt.Fprintf(a.Out, "  %-24s %4dx %12s\n",
				row.Name, row.Quantity, utils.FormatCurrencyINR(row.Revenue))
		}
	}
	if len(report.Customers) > 0 {
		fmt.Fprintln(a.Out, "\nBy customer:")
		for _, row := range report.Customers {
			fmt.Fprintf(a.Out, "  %-20s %-14s %3d orders %12s\n",
				row.Name, utils.Last10(row.Phone), row.Orders, utils.FormatCurrencyINR(row.Spent))
		}
	}
	return nil
}
