package main

import (
	"fmt"
	"log"
	"os"

	"github.com/wongchisum/memo"
	"github.com/wongchisum/memo/i18n"
	"github.com/wongchisum/memo/markdown"
	"github.com/wongchisum/memo/views"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "serve":
		if err := serve(); err != nil {
			log.Fatal(err)
		}
	case "toc":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: memo toc <file.md>")
			os.Exit(1)
		}
		if err := printOutline(os.Args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("memo %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func serve() error {
	cfg := memo.SiteConfig{
		SiteInfo: memo.SiteInfo{
			Name:        memo.EnvOr("SITE_NAME", "Wongchisum"),
			Title:       memo.EnvOr("SITE_TITLE", "Memo"),
			Description: memo.EnvOr("SITE_DESCRIPTION", "求祂把诗与火赐予我"),
			Author:      memo.EnvOr("SITE_AUTHOR", "Wongchisum"),
			Avatar:      memo.EnvOr("SITE_AVATAR", "logo.png"),
			URL:         memo.EnvOr("SITE_URL", "http://localhost:3000"),
			Socials: []memo.Social{
				{Label: "Github", Icon: "github", Link: "https://github.com/wongchisum"},
				{Label: "友情链接", Icon: "link", Link: "/blogroll/"},
			},
			Blogroll: []memo.Link{
				{Name: "神隐少年不说话", URL: "https://www.facebook.com/spiritboyaway"},
				{Name: "设畜", URL: "https://www.facebook.com/profile.php?id=100004039959472"},
				{Name: "凤梨", URL: "https://www.facebook.com/profile.php?id=100001642180626"},
				{Name: "二百五", URL: "https://www.facebook.com/twohundredlee"},
			},
		},
		Addr:          memo.EnvOr("ADDR", ":3000"),
		ContentDir:    memo.EnvOr("CONTENT_DIR", "content"),
		StaticDir:     memo.EnvOr("STATIC_DIR", "public"),
		SessionSecret: memo.MustEnv("SESSION_SECRET"),
		CookieSecure:  memo.EnvBool("COOKIE_SECURE"),
		LogLevel:      memo.EnvOr("LOG_LEVEL", "info"),
	}
	if v := os.Getenv("DEFAULT_LOCALE"); v != "" {
		loc, ok := i18n.Parse(v)
		if !ok {
			return fmt.Errorf("unsupported DEFAULT_LOCALE %q", v)
		}
		cfg.DefaultLocale = loc
	}

	app := memo.New(cfg, views.Default())
	defer app.Close()
	return app.Start()
}

// printOutline prints the table of contents a post would get.
func printOutline(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	doc, err := markdown.Render(src)
	if err != nil {
		return err
	}
	if len(doc.Headings) == 0 {
		fmt.Println("(no headings)")
		return nil
	}
	fmt.Print(markdown.Outline(doc.Headings))
	return nil
}

func printUsage() {
	fmt.Println(`memo - a personal blog built with Go, Echo, and templ

Usage:
  memo [command] [arguments]

Commands:
  serve         Run the web server (default)
  toc <file>    Print the table of contents of a markdown file
  version       Print the memo version
  help          Show this help message

Environment:
  SESSION_SECRET    Required. Signs the preferences cookie
  ADDR              Listen address (default :3000)
  CONTENT_DIR       Markdown root with posts/ and pages/ (default content)
  STATIC_DIR        Static assets served under /public (default public)
  SITE_URL          Canonical site URL
  DEFAULT_LOCALE    zh-CN or en (default zh-CN)
  LOG_LEVEL         debug, info, warn, error or off (default info)
  COOKIE_SECURE     Set to true behind HTTPS`)
}
