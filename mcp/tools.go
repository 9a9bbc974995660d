package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mtlaird/steam-db/internal/appinfo"
	"github.com/mtlaird/steam-db/internal/community"
	"github.com/mtlaird/steam-db/internal/wishlist"
)

func registerTools(s *server.MCPServer, deps *Deps) {
	// app_info
	appTool := mcp.NewTool("app_info",
		mcp.WithDescription("Look up merged store and SteamDB metadata for one Steam app"),
		mcp.WithString("app_id",
			mcp.Description("Steam app ID (either this or search is required)"),
		),
		mcp.WithString("search",
			mcp.Description("Search term to resolve an app ID from"),
		),
		mcp.WithString("source",
			mcp.Description("Pages to fetch: store, steamdb, both (default: both)"),
		),
	)
	s.AddTool(appTool, handleAppInfo(deps))

	// wishlist_discounts
	wishlistTool := mcp.NewTool("wishlist_discounts",
		mcp.WithDescription("List a user's discounted wishlist entries, filtered and sorted"),
		mcp.WithString("user_id",
			mcp.Required(),
			mcp.Description("Steam community profile ID"),
		),
		mcp.WithString("sort",
			mcp.Description("Sort: percent, price, discount, title"),
		),
		mcp.WithNumber("max_price",
			mcp.Description("Keep only entries at or under this discounted price"),
		),
		mcp.WithNumber("min_discount",
			mcp.Description("Keep only entries with at least this discount percent"),
		),
	)
	s.AddTool(wishlistTool, handleWishlistDiscounts(deps))

	// global_achievements
	achievementsTool := mcp.NewTool("global_achievements",
		mcp.WithDescription("Get an app's achievements with global unlock percentages"),
		mcp.WithString("app_id",
			mcp.Required(),
			mcp.Description("Steam app ID"),
		),
	)
	s.AddTool(achievementsTool, handleGlobalAchievements(deps))
}

func handleAppInfo(deps *Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		req := appinfo.Request{
			AppID:      request.GetString("app_id", ""),
			SearchTerm: request.GetString("search", ""),
			Source:     appinfo.Source(request.GetString("source", "both")),
		}
		if req.AppID == "" && req.SearchTerm == "" {
			return mcp.NewToolResultError("app_id or search is required"), nil
		}

		outcome, err := appinfo.Acquire(ctx, deps.Fetcher, req)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("lookup error: %v", err)), nil
		}
		if !outcome.Resolved() {
			return mcp.NewToolResultError(fmt.Sprintf("lookup failed: %s", outcome.Reason)), nil
		}

		info, err := appinfo.AssembleCountry(outcome, deps.CountryCode)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("assemble error: %v", err)), nil
		}

		data, _ := json.MarshalIndent(info, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func handleWishlistDiscounts(deps *Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		userID := request.GetString("user_id", "")
		if userID == "" {
			return mcp.NewToolResultError("user_id is required"), nil
		}

		snap, err := wishlist.Fetch(ctx, deps.Fetcher, userID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("wishlist error: %v", err)), nil
		}

		filter := wishlist.Filter{Sort: wishlist.SortType(request.GetString("sort", ""))}
		if v := request.GetFloat("max_price", 0); v > 0 {
			filter.MaxPrice = &v
		}
		if v := request.GetInt("min_discount", 0); v > 0 {
			filter.MinDiscount = &v
		}

		entries := wishlist.Discounted(snap.Entries(), filter)
		data, _ := json.MarshalIndent(entries, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func handleGlobalAchievements(deps *Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		appID := request.GetString("app_id", "")
		if appID == "" {
			return mcp.NewToolResultError("app_id is required"), nil
		}

		achievements, err := community.GlobalAchievements(ctx, deps.Fetcher, appID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("achievements error: %v", err)), nil
		}

		data, _ := json.MarshalIndent(achievements, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}
