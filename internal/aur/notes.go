package aur

import "fmt"

// UpgradeCommand returns the command that upgrades pkg through helper.
func UpgradeCommand(helper, pkg string) string {
	return fmt.Sprintf("%s -Syu %s", helper, pkg)
}

func updateNotes(current, latest, command string) string {
	return fmt.Sprintf(
		"AUR update available\n\n"+
			"Current version: %s\n"+
			"Latest version: %s\n\n"+
			"Update with:\n"+
			"%s\n\n"+
			"or use another AUR helper",
		current, latest, command,
	)
}

func upToDateNotes(current string) string {
	return fmt.Sprintf("Already up to date (Arch Linux)\nCurrent version: %s", current)
}
