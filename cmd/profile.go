package cmd

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Rorical/RoriComplete/internal/config"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage backend profiles",
	Long:  `Manage completion backend profiles: API keys, models, sampling settings and branding.`,
}

var listProfilesCmd = &cobra.Command{
	Use:   "list",
	Short: "List all profiles",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		fmt.Printf("Active Profile: %s\n\n", cfg.ActiveProfile)
		fmt.Println("Available Profiles:")
		for _, name := range profileNames(cfg, "") {
			profile := cfg.Profiles[name]
			marker := ""
			if name == cfg.ActiveProfile {
				marker = " (active)"
			}
			fmt.Printf("  %s%s\n", name, marker)
			fmt.Printf("    Model: %s\n", profile.Model)
			if profile.BaseURL != "" {
				fmt.Printf("    Base URL: %s\n", profile.BaseURL)
			}
			hasKey := "No"
			if profile.APIKey != "" {
				hasKey = "Yes"
			}
			fmt.Printf("    API Key: %s\n", hasKey)
			fmt.Println()
		}
	},
}

var showProfileCmd = &cobra.Command{
	Use:   "show [profile-name]",
	Short: "Show profile details",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		profileName := args[0]
		profile, exists := cfg.Profiles[profileName]
		if !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		fmt.Printf("Profile: %s\n", profileName)
		fmt.Printf("Model: %s\n", profile.Model)
		fmt.Printf("Base URL: %s\n", profile.BaseURL)
		hasKey := "Not set"
		if profile.APIKey != "" {
			hasKey = "Set (hidden for security)"
		}
		fmt.Printf("API Key: %s\n", hasKey)
		fmt.Printf("Max Tokens: %d\n", profile.MaxTokens)
		fmt.Printf("Temperature: %g\n", profile.Temperature)
		fmt.Printf("Request Timeout: %ds\n", profile.RequestTimeout)
		fmt.Printf("Dump Format: %s\n", profile.DumpFormat)
		switch {
		case profile.Branding.URL != "":
			fmt.Printf("Branding: fetched from %s\n", profile.Branding.URL)
		case profile.Branding.Name != "":
			fmt.Printf("Branding: %s (logo %q, favicon %q)\n", profile.Branding.Name, profile.Branding.Logo, profile.Branding.Favicon)
		default:
			fmt.Println("Branding: default")
		}
	},
}

var addProfileCmd = &cobra.Command{
	Use:   "add [profile-name]",
	Short: "Add a new profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		var profileName string
		if len(args) > 0 {
			profileName = args[0]
		} else {
			prompt := promptui.Prompt{
				Label: "Profile name",
			}
			profileName, err = prompt.Run()
			if err != nil {
				log.Fatalf("Prompt failed: %v", err)
			}
		}

		if _, exists := cfg.Profiles[profileName]; exists {
			log.Fatalf("Profile '%s' already exists", profileName)
		}

		profile, err := promptProfile(config.DefaultProfile())
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}

		cfg.Profiles[profileName] = profile
		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Profile '%s' added successfully!\n", profileName)
	},
}

var editProfileCmd = &cobra.Command{
	Use:   "edit [profile-name]",
	Short: "Edit an existing profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		profileName, err := pickProfile(cfg, args, "Select profile to edit", "")
		if err != nil {
			log.Fatalf("Selection failed: %v", err)
		}

		profile, exists := cfg.Profiles[profileName]
		if !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		profile, err = promptProfile(profile)
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}

		cfg.Profiles[profileName] = profile
		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Profile '%s' updated successfully!\n", profileName)
	},
}

var deleteProfileCmd = &cobra.Command{
	Use:   "delete [profile-name]",
	Short: "Delete a profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		profileName, err := pickProfile(cfg, args, "Select profile to delete", "")
		if err != nil {
			log.Fatalf("Selection failed: %v", err)
		}

		if _, exists := cfg.Profiles[profileName]; !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		confirmPrompt := promptui.Prompt{
			Label:     fmt.Sprintf("Delete profile '%s'? (y/N)", profileName),
			IsConfirm: true,
		}
		if _, err := confirmPrompt.Run(); err != nil {
			fmt.Println("Deletion cancelled")
			return
		}

		delete(cfg.Profiles, profileName)

		// Keep a valid active profile around
		if cfg.ActiveProfile == profileName {
			if rest := profileNames(cfg, ""); len(rest) > 0 {
				cfg.ActiveProfile = rest[0]
			} else {
				cfg.ActiveProfile = "default"
				cfg.Profiles["default"] = config.DefaultProfile()
			}
		}

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Profile '%s' deleted successfully!\n", profileName)
	},
}

var switchProfileCmd = &cobra.Command{
	Use:   "switch [profile-name]",
	Short: "Switch to a different profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		if len(args) == 0 && len(profileNames(cfg, cfg.ActiveProfile)) == 0 {
			fmt.Println("No other profiles available to switch to")
			return
		}

		profileName, err := pickProfile(cfg, args, "Select profile to switch to", cfg.ActiveProfile)
		if err != nil {
			log.Fatalf("Selection failed: %v", err)
		}

		if _, exists := cfg.Profiles[profileName]; !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		cfg.ActiveProfile = profileName
		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Switched to profile '%s'\n", profileName)
	},
}

// profileNames returns the sorted profile names, leaving out skip
func profileNames(cfg *config.Config, skip string) []string {
	names := make([]string, 0, len(cfg.Profiles))
	for name := range cfg.Profiles {
		if name != skip {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func pickProfile(cfg *config.Config, args []string, label, skip string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	names := profileNames(cfg, skip)
	if len(names) == 0 {
		return "", errors.New("no profiles available")
	}
	prompt := promptui.Select{
		Label: label,
		Items: names,
	}
	_, name, err := prompt.Run()
	return name, err
}

// promptProfile asks for every profile field, offering current values as defaults
func promptProfile(p config.Profile) (config.Profile, error) {
	var err error

	text := func(label, def string, mask rune) string {
		if err != nil {
			return def
		}
		prompt := promptui.Prompt{Label: label, Default: def, Mask: mask}
		var v string
		v, err = prompt.Run()
		return v
	}

	p.APIKey = text("API Key", p.APIKey, '*')
	p.Model = text("Model", p.Model, 0)
	p.BaseURL = text("Base URL (optional)", p.BaseURL, 0)
	if err != nil {
		return p, err
	}

	maxTokens, err := promptNumber("Max tokens", strconv.Itoa(p.MaxTokens), func(s string) error {
		n, err := strconv.Atoi(s)
		if err == nil && n <= 0 {
			return errors.New("must be positive")
		}
		return err
	})
	if err != nil {
		return p, err
	}
	p.MaxTokens, _ = strconv.Atoi(maxTokens)

	temperature, err := promptNumber("Temperature", strconv.FormatFloat(float64(p.Temperature), 'g', -1, 32), func(s string) error {
		f, err := strconv.ParseFloat(s, 32)
		if err == nil && (f < 0 || f > 2) {
			return errors.New("must be between 0 and 2")
		}
		return err
	})
	if err != nil {
		return p, err
	}
	t, _ := strconv.ParseFloat(temperature, 32)
	p.Temperature = float32(t)

	formats := []string{config.DumpJSON, config.DumpTOML, config.DumpYAML}
	formatPrompt := promptui.Select{
		Label:     "Response dump format",
		Items:     formats,
		CursorPos: sort.SearchStrings(formats, p.DumpFormat) % len(formats),
	}
	if _, p.DumpFormat, err = formatPrompt.Run(); err != nil {
		return p, err
	}

	p.Branding.URL = text("Branding URL (optional)", p.Branding.URL, 0)
	if p.Branding.URL == "" {
		p.Branding.Name = text("Application name (optional)", p.Branding.Name, 0)
		p.Branding.Logo = text("Logo path or URL (optional)", p.Branding.Logo, 0)
		p.Branding.Favicon = text("Favicon path or URL (optional)", p.Branding.Favicon, 0)
	}
	return p, err
}

func promptNumber(label, def string, validate promptui.ValidateFunc) (string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Default:  def,
		Validate: validate,
	}
	return prompt.Run()
}

func init() {
	profileCmd.AddCommand(listProfilesCmd)
	profileCmd.AddCommand(showProfileCmd)
	profileCmd.AddCommand(addProfileCmd)
	profileCmd.AddCommand(editProfileCmd)
	profileCmd.AddCommand(deleteProfileCmd)
	profileCmd.AddCommand(switchProfileCmd)
}
