package main

import "fmt"

// Run executes the languages command.
func (c *LanguagesCmd) Run(deps *Dependencies) error {
	for _, language := range deps.Stoplists.Languages() {
		fmt.Fprintln(deps.Stdout, language)
	}
	return nil
}
