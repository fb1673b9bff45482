package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"scriptcraft-client/internal/api"
	"scriptcraft-client/internal/auth"
	"scriptcraft-client/internal/config"
	"scriptcraft-client/internal/core"
	"scriptcraft-client/internal/logger"
	"scriptcraft-client/internal/notify"
	"scriptcraft-client/internal/scripts"
	"scriptcraft-client/internal/storage"
)

// app wires the stores and the pipeline together for the command loop.
type app struct {
	client  *api.Client
	session *auth.Session
	scripts *scripts.Store
	nav     *notify.ConsoleNavigator
}

func main() {
	// Load environment variables from .env file when one exists
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Log); err != nil {
		fmt.Printf("Error initializing logger: %v\n", err)
		os.Exit(1)
	}

	store, err := openStore(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open state store")
	}
	defer store.Close()

	session := auth.NewSession(ctx, store)
	scriptStore := scripts.NewStore()
	defer scriptStore.Close()

	notifier := &notify.ConsoleNotifier{Out: os.Stdout}
	nav := &notify.ConsoleNavigator{Out: os.Stdout}
	client := api.NewClient(
		cfg.API.BaseURL,
		time.Duration(cfg.API.TimeoutSeconds)*time.Second,
		session,
		notifier,
		nav,
	)

	a := &app{client: client, session: session, scripts: scriptStore, nav: nav}
	a.run(ctx)
}

// openStore picks the durable backend from configuration.
func openStore(ctx context.Context, cfg config.StorageConfig) (storage.Store, error) {
	switch cfg.Backend {
	case "", "file":
		return storage.NewFileStore(cfg.FilePath)
	case "redis":
		return storage.NewRedisStore(ctx, cfg.RedisURL)
	case "memory":
		return storage.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Backend)
	}
}

func (a *app) run(ctx context.Context) {
	fmt.Println("ScriptCraft console client. Type 'help' for commands.")
	if a.session.IsLoggedIn() {
		if user, ok := a.session.User(); ok {
			fmt.Printf("Welcome back, %s\n", user.Nickname)
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "help":
			printHelp()
		case "register":
			a.register(ctx, scanner)
		case "login":
			a.login(ctx, scanner)
		case "logout":
			if err := a.session.Logout(ctx); err != nil {
				fmt.Printf("logout failed: %v\n", err)
				continue
			}
			fmt.Println("logged out")
		case "whoami":
			a.whoami(ctx)
		case "generate":
			a.generate(ctx, scanner)
		case "versions":
			if len(args) != 1 {
				fmt.Println("usage: versions <sessionId>")
				continue
			}
			a.versions(ctx, args[0])
		case "view":
			if len(args) != 1 {
				fmt.Println("usage: view <versionId>")
				continue
			}
			a.view(ctx, args[0])
		case "edit":
			if len(args) != 1 {
				fmt.Println("usage: edit <versionId>")
				continue
			}
			a.edit(ctx, args[0], scanner)
		case "select":
			if len(args) != 1 {
				fmt.Println("usage: select <versionId>")
				continue
			}
			a.selectVersion(ctx, args[0])
		case "history":
			page := 1
			if len(args) > 0 {
				if p, err := strconv.Atoi(args[0]); err == nil {
					page = p
				}
			}
			a.history(ctx, page)
		case "clear":
			a.scripts.ClearCache()
			fmt.Println("script cache cleared")
		case "quit", "exit":
			return
		default:
			fmt.Printf("unknown command: %s\n", cmd)
		}

		// The pipeline forces a logout+redirect on 401; reflect it here the
		// way the router would.
		if a.nav.ConsumeRedirect() && !a.session.IsLoggedIn() {
			fmt.Println("(session ended)")
		}
	}
}

func printHelp() {
	fmt.Println(`commands:
  register              create an account
  login                 log in
  logout                log out
  whoami                show the logged-in profile
  generate              generate scripts for a topic
  versions <sessionId>  list versions of a generation session
  view <versionId>      show a script version (cached after first fetch)
  edit <versionId>      retitle a script version
  select <versionId>    mark a version as chosen
  history [page]        list past generation sessions
  clear                 clear the script detail cache
  quit                  exit`)
}

// requireLogin is the console's navigation guard: protected commands bounce
// to the login prompt when no session exists.
func (a *app) requireLogin() bool {
	if a.session.IsLoggedIn() {
		return true
	}
	fmt.Println("please log in first ('login')")
	return false
}

func (a *app) register(ctx context.Context, scanner *bufio.Scanner) {
	email := prompt(scanner, "email: ")
	password := prompt(scanner, "password: ")
	nickname := prompt(scanner, "nickname (optional): ")

	user, err := a.client.Register(ctx, core.RegisterRequest{
		Email:    email,
		Password: password,
		Nickname: nickname,
	})
	if err != nil {
		return // pipeline already notified
	}
	fmt.Printf("registered %s, you can log in now\n", user.Email)
}

func (a *app) login(ctx context.Context, scanner *bufio.Scanner) {
	email := prompt(scanner, "email: ")
	password := prompt(scanner, "password: ")

	result, err := a.client.Login(ctx, core.LoginRequest{Email: email, Password: password})
	if err != nil {
		return
	}
	if err := a.session.SetLoginInfo(ctx, result.Token, result.User); err != nil {
		fmt.Printf("failed to persist session: %v\n", err)
		return
	}
	fmt.Printf("logged in as %s\n", result.User.Nickname)
}

func (a *app) whoami(ctx context.Context) {
	if !a.requireLogin() {
		return
	}
	user, err := a.client.GetUserProfile(ctx)
	if err != nil {
		return
	}
	fmt.Printf("%s <%s> (since %s)\n", user.Nickname, user.Email, user.CreatedAt)
}

func (a *app) generate(ctx context.Context, scanner *bufio.Scanner) {
	if !a.requireLogin() {
		return
	}

	fmt.Println("video types:")
	for _, o := range core.VideoTypes {
		fmt.Printf("  %-15s %s\n", o.Value, o.Label)
	}
	videoType := prompt(scanner, "video type: ")
	theme := prompt(scanner, "theme: ")

	fmt.Println("styles:")
	for _, o := range core.StylePreferences {
		fmt.Printf("  %-15s %s\n", o.Value, o.Label)
	}
	style := prompt(scanner, "style (optional): ")

	fmt.Println("generating, this can take a while...")
	result, err := a.client.GenerateScript(ctx, core.GenerateRequest{
		VideoType:       videoType,
		ThemeInput:      theme,
		StylePreference: style,
	})
	if err != nil {
		return
	}

	a.scripts.SetCurrentSession(result.SessionID, result.Versions)
	fmt.Printf("session %s, %d versions:\n", result.SessionID, len(result.Versions))
	printVersions(result.Versions)
}

func (a *app) versions(ctx context.Context, sessionID string) {
	if !a.requireLogin() {
		return
	}
	versions, err := a.client.GetSessionVersions(ctx, sessionID)
	if err != nil {
		return
	}
	a.scripts.SetCurrentSession(sessionID, versions)
	printVersions(versions)
}

func (a *app) view(ctx context.Context, versionID string) {
	if !a.requireLogin() {
		return
	}

	detail, ok := a.scripts.CachedDetail(versionID)
	if !ok {
		var err error
		detail, err = a.client.GetScriptDetail(ctx, versionID)
		if err != nil {
			return
		}
		a.scripts.CacheDetail(versionID, detail)
	} else {
		fmt.Println("(cached)")
	}

	fmt.Printf("%s (v%d, %d words, %d scenes)\n",
		detail.Title, detail.VersionIndex, detail.WordCount, detail.SceneCount)
	for i, scene := range detail.Content.Scenes {
		fmt.Printf("  %d. [%s] %s\n", i+1, scene.TimeRange, scene.Voiceover)
	}
	if len(detail.Content.EndingCTA) > 0 {
		fmt.Printf("  CTA: %s\n", strings.Join(detail.Content.EndingCTA, " / "))
	}
}

func (a *app) edit(ctx context.Context, versionID string, scanner *bufio.Scanner) {
	if !a.requireLogin() {
		return
	}

	detail, ok := a.scripts.CachedDetail(versionID)
	if !ok {
		var err error
		detail, err = a.client.GetScriptDetail(ctx, versionID)
		if err != nil {
			return
		}
	}

	title := prompt(scanner, fmt.Sprintf("new title [%s]: ", detail.Content.Title))
	if title == "" {
		fmt.Println("unchanged")
		return
	}
	detail.Content.Title = title

	result, err := a.client.UpdateScript(ctx, versionID, core.UpdateScriptRequest{Content: detail.Content})
	if err != nil {
		return
	}
	// The cached copy is stale now; drop it so the next view refetches.
	a.scripts.ClearCache()
	fmt.Printf("updated %s at %s\n", result.VersionID, result.UpdatedAt)
}

func (a *app) selectVersion(ctx context.Context, versionID string) {
	if !a.requireLogin() {
		return
	}
	if err := a.client.SelectScript(ctx, versionID); err != nil {
		return
	}
	fmt.Printf("version %s selected\n", versionID)
}

func (a *app) history(ctx context.Context, page int) {
	if !a.requireLogin() {
		return
	}
	result, err := a.client.GetScriptHistory(ctx, core.HistoryQuery{Page: page, PageSize: 10})
	if err != nil {
		return
	}
	fmt.Printf("page %d/%d (%d total)\n", result.Page, (result.Total+result.PageSize-1)/max(result.PageSize, 1), result.Total)
	for _, s := range result.Sessions {
		fmt.Printf("  %s  %-18s %s\n", s.ID, core.VideoTypeLabel(s.VideoType), s.ThemeInput)
	}
}

func printVersions(versions []core.VersionBrief) {
	for _, v := range versions {
		marker := " "
		if v.IsSelected == 1 {
			marker = "*"
		}
		fmt.Printf("  %s %s  %s (%d words, %d scenes)\n",
			marker, v.VersionID, v.Title, v.Preview.WordCount, v.Preview.SceneCount)
	}
}

func prompt(scanner *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}
