package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Demo account seeded when SEED_MOCK_DATA is on
const (
	candidateEmail = "candidate@example.com"
	demoPassword   = "password"
)

func main() {
	endpoint := flag.String("endpoint", "http://localhost:8080/mcp/stream", "MCP stream endpoint")
	flag.Parse()

	ctx := context.Background()

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "jobboard-test-client",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: *endpoint,
	}, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	log.Printf("Connected to server (session ID: %s)\n", session.ID())

	testListTools(ctx, session)
	testJobSearch(ctx, session)
	testCandidateFlow(ctx, session)

	fmt.Println("\nAll tests completed")
}

func testListTools(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: list tools")

	res, err := session.ListTools(ctx, nil)
	if err != nil {
		log.Printf("list tools failed: %v", err)
		return
	}
	for _, t := range res.Tools {
		fmt.Printf("  %s: %s\n", t.Name, t.Description)
	}
}

func testJobSearch(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: search_jobs")

	call(ctx, session, "search_jobs", map[string]any{
		"query":       "engineer",
		"remote_only": true,
	})
	call(ctx, session, "featured_jobs", nil)
	call(ctx, session, "get_job", map[string]any{"id": "1"})
}

// testCandidateFlow logs in as the demo candidate, applies, bookmarks and
// reads the dashboard
func testCandidateFlow(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: candidate flow")

	if !call(ctx, session, "login", map[string]any{"email": candidateEmail, "password": demoPassword}) {
		return
	}
	defer call(ctx, session, "logout", nil)

	call(ctx, session, "current_user", nil)
	// Seed deadlines are in the past, so this shows the closed-job error
	call(ctx, session, "apply_to_job", map[string]any{"job_id": "2", "cover_letter": "Hello from the test client", "resume_ref": "/resumes/candidate.pdf"})
	call(ctx, session, "save_job", map[string]any{"job_id": "1", "notes": "from test client"})
	call(ctx, session, "list_applications", nil)
	call(ctx, session, "list_saved_jobs", nil)
	call(ctx, session, "dashboard_stats", nil)
}

func call(ctx context.Context, session *mcp.ClientSession, name string, args map[string]any) bool {
	if args == nil {
		args = map[string]any{}
	}
	result, err := session.CallTool(ctx, &mcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		log.Printf("%s failed: %v", name, err)
		return false
	}

	fmt.Printf("-> %s\n", name)
	printResult(result)
	return !result.IsError
}

func printResult(res *mcp.CallToolResult) {
	for _, c := range res.Content {
		if txt, ok := c.(*mcp.TextContent); ok {
			fmt.Println(txt.Text)
		}
	}
}
