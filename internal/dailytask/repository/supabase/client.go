package supabase

import (
	"strings"

	"github.com/supabase-community/postgrest-go"
)

// uniqueViolation is the Postgres error code PostgREST reports for duplicate keys.
const uniqueViolation = "23505"

// NewClient returns a PostgREST client for a Supabase project URL such as
// https://xyz.supabase.co, authenticated with the project API key.
func NewClient(projectURL, apiKey string) *postgrest.Client {
	return postgrest.NewClient(strings.TrimRight(projectURL, "/")+"/rest/v1", "", map[string]string{
		"apikey":        apiKey,
		"Authorization": "Bearer " + apiKey,
	})
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), uniqueViolation)
}
