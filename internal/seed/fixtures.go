package seed

import (
	"time"

	"github.com/ledger1-hq/website/backend/internal/domain"
)

var seedTime = time.Now().UTC()

// Fixture ids are the slugs their titles produce, so seeded and CMS-created
// content live under the same identifier scheme.

var helpArticles = []*domain.HelpArticle{
	{
		ID:          "getting-started-with-ledger1",
		Title:       "Getting Started With Ledger1",
		Description: "Set up your workspace, connect your first data source and run your first reconciliation.",
		Category:    "getting-started",
		Content:     "## Welcome to Ledger1\n\nThis guide walks you through creating a workspace, inviting your team and connecting your first ledger source.\n\n1. Create your workspace\n2. Connect a data source\n3. Run a reconciliation\n",
		Tags:        []string{"onboarding", "basics"},
		Published:   true,
		CreatedAt:   seedTime,
		UpdatedAt:   seedTime,
	},
	{
		ID:          "managing-team-permissions",
		Title:       "Managing Team Permissions",
		Description: "Control who can view, edit and approve entries across your workspaces.",
		Category:    "administration",
		Content:     "Workspace owners can grant viewer, editor or approver access per ledger. Changes apply immediately and are reflected in the activity feed.",
		Tags:        []string{"permissions", "teams"},
		Published:   true,
		CreatedAt:   seedTime,
		UpdatedAt:   seedTime,
	},
}

var documentation = []*domain.Documentation{
	{
		ID:          "quickstart",
		Title:       "Quickstart",
		Description: "From zero to a reconciled ledger in ten minutes.",
		Section:     "getting-started",
		Content:     "Install the CLI, authenticate with your API key and import your first statement.",
		Order:       1,
		Tags:        []string{"quickstart"},
		Published:   true,
		CreatedAt:   seedTime,
		UpdatedAt:   seedTime,
	},
	{
		ID:          "authentication",
		Title:       "Authentication",
		Description: "API keys, scopes and rotating credentials.",
		Section:     "api",
		Content:     "All API requests are authenticated with a bearer token. Keys are scoped per workspace and can be rotated without downtime.",
		Order:       1,
		Tags:        []string{"api", "security"},
		Published:   true,
		CreatedAt:   seedTime,
		UpdatedAt:   seedTime,
	},
	{
		ID:          "webhooks",
		Title:       "Webhooks",
		Description: "Subscribe to reconciliation and approval events.",
		Section:     "integrations",
		Content:     "Register an HTTPS endpoint to receive signed event payloads whenever a reconciliation completes or an entry is approved.",
		Order:       2,
		Tags:        []string{"integrations"},
		Published:   true,
		CreatedAt:   seedTime,
		UpdatedAt:   seedTime,
	},
}

var videos = []*domain.Video{
	{
		ID:          "ledger1-in-five-minutes",
		Title:       "Ledger1 In Five Minutes",
		Description: "A quick tour of the dashboard, sources and reconciliation views.",
		URL:         "https://videos.ledger1.example/ledger1-in-five-minutes.mp4",
		Duration:    "5:12",
		Category:    "product-tour",
		Tags:        []string{"overview"},
		Published:   true,
		CreatedAt:   seedTime,
		UpdatedAt:   seedTime,
	},
	{
		ID:          "importing-bank-statements",
		Title:       "Importing Bank Statements",
		Description: "Connect a bank feed or upload statements by hand.",
		URL:         "https://videos.ledger1.example/importing-bank-statements.mp4",
		Duration:    "7:48",
		Category:    "how-to",
		Tags:        []string{"imports", "banking"},
		Published:   true,
		CreatedAt:   seedTime,
		UpdatedAt:   seedTime,
	},
}

var careers = []*domain.Career{
	{
		ID:               "senior-backend-engineer",
		Title:            "Senior Backend Engineer",
		Department:       "Engineering",
		Location:         "Remote",
		Type:             "Full-time",
		Description:      "Own the services powering reconciliation at scale.",
		Responsibilities: "Design and operate the ledger ingestion pipeline; mentor engineers; keep the API fast and boring.",
		Qualifications:   "5+ years building production services; strong SQL; experience with event-driven systems.",
		Benefits:         "Remote-first, meaningful equity, learning budget.",
		SalaryRange:      "$150k-$190k",
		ApplyURL:         "https://ledger1.example/careers/senior-backend-engineer/apply",
		Tags:             []string{"engineering", "remote"},
		Published:        true,
		CreatedAt:        seedTime,
		UpdatedAt:        seedTime,
	},
	{
		ID:               "product-marketing-manager",
		Title:            "Product Marketing Manager",
		Department:       "Marketing",
		Location:         "New York, NY",
		Type:             "Full-time",
		Description:      "Tell the Ledger1 story to finance teams who live in spreadsheets.",
		Responsibilities: "Own positioning, launch campaigns and the content calendar.",
		Qualifications:   "3+ years in B2B SaaS marketing; you can explain double-entry bookkeeping without slides.",
		Tags:             []string{"marketing"},
		Published:        true,
		CreatedAt:        seedTime,
		UpdatedAt:        seedTime,
	},
}

var blogPosts = []*domain.BlogPost{
	{
		Slug:        "introducing-ledger1",
		Title:       "Introducing Ledger1",
		Description: "Why we built a reconciliation platform for modern finance teams.",
		Content:     "Finance teams deserve tooling that treats the ledger as a product, not an afterthought. Today we are opening Ledger1 to everyone.",
		Date:        "2025-06-02",
		Author:      "Ledger1 Team",
		Tags:        []string{"announcements"},
		Published:   true,
		CreatedAt:   seedTime,
		UpdatedAt:   seedTime,
	},
	{
		Slug:        "closing-the-books-without-the-all-nighter",
		Title:       "Closing The Books Without The All-Nighter",
		Description: "A practical month-end checklist from teams that finish on day three.",
		Content:     "The fastest closes we have seen share three habits: continuous reconciliation, explicit owners per account, and no spreadsheet handoffs.",
		Date:        "2025-07-15",
		Author:      "Ledger1 Team",
		Tags:        []string{"best-practices", "month-end"},
		Published:   true,
		CreatedAt:   seedTime,
		UpdatedAt:   seedTime,
	},
}
