// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var skillsCmd = &cobra.Command{
	Use:   "skills [skills...]",
	Short: "Categorize skills against the taxonomy",
	Long: `Skills prints the taxonomy category of each argument. Without arguments it
lists the skill categories and their keywords.`,
	RunE: runSkills,
}

func init() {
	rootCmd.AddCommand(skillsCmd)
}

func runSkills(cmd *cobra.Command, args []string) error {
	_, tax, err := newRegistry()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		for _, c := range tax.SkillCategories() {
			fmt.Printf("%s: %s\n", c, strings.Join(tax.CategorySkills(c), ", "))
		}
		fmt.Printf("%d skill keywords\n", len(tax.AllSkillKeywords()))
		return nil
	}

	for _, s := range args {
		fmt.Printf("%-25s -> %s\n", strings.TrimSpace(s), tax.CategorizeSkill(s))
	}
	return nil
}
