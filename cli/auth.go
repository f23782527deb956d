package cli

import (
	"flag"
	"fmt"

	"github.com/streetbites/streetbites/mockd"
	"github.com/streetbites/streetbites/models"
	"github.com/streetbites/streetbites/utils"
)

func (a *App) runLogin(args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "staff email")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return fmt.Errorf("-email and -password are required")
	}

	resp, err := a.API.Login(*email, *password)
	if err != nil {
		return fmt.Errorf("login failed: %v", err)
	}

	if err := a.Session.SaveToken(resp.Token); err != nil {
		return fmt.Errorf("could not store login: %v", err)
	}
	if err := a.Session.SaveProfile(resp.Profile); err != nil {
		utils.ErrorLogger.Printf("Could not store profile: %v", err)
	}

	fmt.Fprintf(a.Out, "Logged in as %s (%s).\n", resp.Profile.Name, resp.Profile.Role)
	return nil
}

func (a *App) runRegister(args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	name := fs.String("name", "", "your name")
	email := fs.String("email", "", "email")
	password := fs.String("password", "", "password")
	role := fs.String("role", "staff", "role")
	branch := fs.String("branch", "", "branch name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" || *name == "" {
		return fmt.Errorf("-name, -email and -password are required")
	}

	resp, err := a.API.Register(models.RegisterRequest{
		Name:     *name,
		Email:    *email,
		Password: *password,
		Role:     *role,
		Branch:   *branch,
	})
	if err != nil {
		return fmt.Errorf("registration failed: %v", err)
	}

	if err := a.Session.SaveToken(resp.Token); err != nil {
		return fmt.Errorf("could not store login: %v", err)
	}
	if err := a.Session.SaveProfile(resp.Profile); err != nil {
		utils.ErrorLogger.Printf("Could not store profile: %v", err)
	}

	fmt.Fprintf(a.Out, "Registered and logged in as %s.\n", resp.Profile.Name)
	return nil
}

func (a *App) runLogout() error {
	if err := a.Session.ClearToken(); err != nil {
		return fmt.Errorf("could not clear login: %v", err)
	}
	fmt.Fprintln(a.Out, "Logged out.")
	return nil
}

// runMockd starts the fake backend for local development.
func (a *App) runMockd() error {
	srv, err := mockd.NewServer("streetbites-mockd.db", []byte(a.Config.JWTSecret))
	if err != nil {
		return fmt.Errorf("could not start mock backend: %v", err)
	}

	utils.InfoLogger.Printf("Mock backend listening on port %s", a.Config.MockPort)
	return srv.Router().Run(":" + a.Config.MockPort)
}
