// Command reconcile diffs the external auth provider's account list against
// the local users table. It reports accounts that exist only on the provider
// (orphans, usually left behind by failed signups) and local rows with no
// provider account. With -cleanup it deletes the orphan provider accounts
// after printing the report.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"folio/internal/config"
	"folio/internal/repository/postgres"
)

type providerUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type providerUserPage struct {
	Users []providerUser `json:"users"`
}

type providerClient struct {
	baseURL    string
	serviceKey string
	pageSize   int
	httpClient *http.Client
}

func newProviderClient(cfg *config.AuthProviderConfig) *providerClient {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}
	return &providerClient{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		serviceKey: cfg.ServiceKey,
		pageSize:   pageSize,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// listUsers pages through the provider admin API until an empty page.
func (c *providerClient) listUsers(ctx context.Context) ([]providerUser, error) {
	var all []providerUser
	for page := 1; ; page++ {
		url := fmt.Sprintf("%s/admin/users?page=%d&per_page=%d", c.baseURL, page, c.pageSize)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.serviceKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("listing users (page %d): %w", page, err)
		}

		var result providerUserPage
		err = json.NewDecoder(resp.Body).Decode(&result)
		_ = resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("listing users (page %d): status %d", page, resp.StatusCode)
		}
		if err != nil {
			return nil, fmt.Errorf("decoding users (page %d): %w", page, err)
		}

		all = append(all, result.Users...)
		if len(result.Users) < c.pageSize {
			return all, nil
		}
	}
}

func (c *providerClient) deleteUser(ctx context.Context, id string) error {
	url := fmt.Sprintf("%s/admin/users/%s", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating delete request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("deleting user %s: %w", id, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("deleting user %s: status %d", id, resp.StatusCode)
	}
	return nil
}

func main() {
	cleanup := flag.Bool("cleanup", false, "delete orphan provider accounts after reporting")
	flag.Parse()

	if err := run(*cleanup); err != nil {
		log.Fatal(err)
	}
}

func run(cleanup bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.AuthProvider.BaseURL == "" {
		return fmt.Errorf("FOLIO_AUTH_PROVIDER_BASE_URL is not set")
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()

	provider := newProviderClient(&cfg.AuthProvider)
	providerUsers, err := provider.listUsers(ctx)
	if err != nil {
		return fmt.Errorf("fetching provider users: %w", err)
	}

	localEmails, err := postgres.NewUserRepo(db).ListEmails(ctx)
	if err != nil {
		return fmt.Errorf("fetching local users: %w", err)
	}

	localSet := make(map[string]bool, len(localEmails))
	for _, email := range localEmails {
		localSet[strings.ToLower(email)] = true
	}
	providerSet := make(map[string]bool, len(providerUsers))

	var orphans []providerUser
	for _, pu := range providerUsers {
		email := strings.ToLower(pu.Email)
		providerSet[email] = true
		if !localSet[email] {
			orphans = append(orphans, pu)
		}
	}

	var missing []string
	for _, email := range localEmails {
		if !providerSet[strings.ToLower(email)] {
			missing = append(missing, email)
		}
	}

	fmt.Printf("provider accounts: %d, local users: %d\n", len(providerUsers), len(localEmails))
	fmt.Printf("orphan provider accounts (no local row): %d\n", len(orphans))
	for _, o := range orphans {
		fmt.Printf("  orphan: %s (%s)\n", o.Email, o.ID)
	}
	fmt.Printf("local rows with no provider account: %d\n", len(missing))
	for _, email := range missing {
		fmt.Printf("  missing: %s\n", email)
	}

	if !cleanup {
		return nil
	}

	failed := 0
	for _, o := range orphans {
		if err := provider.deleteUser(ctx, o.ID); err != nil {
			log.Printf("cleanup: %v", err)
			failed++
			continue
		}
		fmt.Printf("deleted orphan provider account: %s\n", o.Email)
	}
	if failed > 0 {
		os.Exit(1)
	}
	return nil
}
