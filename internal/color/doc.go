// Package color holds the terminal styles used for unity-activate's final
// status lines.
//
// Styles go through lipgloss, which drops ANSI sequences when the output is
// not a terminal or NO_COLOR is set, so CI logs stay readable either way.
//
//	fmt.Println(color.SuccessStyle.Render("License activation successful."))
package color
