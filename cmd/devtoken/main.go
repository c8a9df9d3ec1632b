// Command devtoken prints a signed bearer token for local development.
// By default the token belongs to the seeded demo workspace.
//
//	go run ./cmd/devtoken -role operator -clients <uuid>,<uuid>
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"adops/internal/adapter/token"
	"adops/internal/config"
	"adops/internal/core/domain"
	"adops/internal/core/rbac"
	"adops/internal/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	role := flag.String("role", string(domain.RoleOwner), "owner, admin, operator or viewer")
	email := flag.String("email", "dev@adops.local", "email carried by the token")
	user := flag.String("user", "", "user id (random when empty)")
	workspace := flag.String("workspace", db.DemoWorkspaceID.String(), "workspace id, empty for none")
	clients := flag.String("clients", "", "comma separated client ids")
	ttl := flag.Duration("ttl", cfg.Auth.TokenTTL, "token lifetime")
	flag.Parse()

	actor := domain.Actor{
		UserID: uuid.New(),
		Email:  *email,
		Role:   rbac.Normalize(*role),
	}
	if *user != "" {
		if actor.UserID, err = uuid.Parse(*user); err != nil {
			fail("invalid -user: %v", err)
		}
	}
	if *workspace != "" {
		if actor.WorkspaceID, err = uuid.Parse(*workspace); err != nil {
			fail("invalid -workspace: %v", err)
		}
	}
	for _, raw := range strings.Split(*clients, ",") {
		if raw = strings.TrimSpace(raw); raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			fail("invalid client id %q: %v", raw, err)
		}
		actor.ClientIDs = append(actor.ClientIDs, id)
	}

	signed, expires, err := token.NewJWT(cfg.Auth).Issue(actor, *ttl)
	if err != nil {
		fail("issue token: %v", err)
	}
	fmt.Fprintf(os.Stderr, "role=%s user=%s expires=%s\n", actor.Role, actor.UserID, expires.Format("2006-01-02 15:04:05Z07:00"))
	fmt.Println(signed)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
