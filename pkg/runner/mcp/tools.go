package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/nomilog/pkg/category"
	"tableflip.dev/nomilog/pkg/record"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListRecordsTool(srv, svc)
	registerGetRecordTool(srv, svc)
	registerAddRecordTool(srv, svc)
	registerUpdateRecordTool(srv, svc)
	registerDeleteRecordTool(srv, svc)
	registerRecordStatsTool(srv, svc)
	registerMonthCalendarTool(srv, svc)
	registerPremiumStatusTool(srv, svc)
}

func registerListRecordsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_records",
		mcp.WithDescription("List diary records, newest first, optionally filtered."),
		mcp.WithString("query",
			mcp.Description("Case-insensitive text that must appear in the drink name."),
		),
		mcp.WithArray("categories",
			mcp.Description("Only records in these categories."),
			mcp.Items(map[string]any{"type": "string", "enum": category.Keys()}),
		),
		mcp.WithArray("ratings",
			mcp.Description("Only records with these ratings (1-5)."),
			mcp.Items(map[string]any{"type": "integer", "minimum": 1, "maximum": 5}),
		),
		mcp.WithString("on",
			mcp.Description("Only records on this date (YYYY-MM-DD)."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of records to return."),
			mcp.Min(1),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args ListOptions
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		records, err := svc.ListRecords(ctx, args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"records": records,
			"count":   len(records),
		})
	})
}

func registerGetRecordTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_record",
		mcp.WithDescription("Fetch a single record by id or unique id prefix."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Record identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.GetRecord(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerAddRecordTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_record",
		mcp.WithDescription("Log a drink. Returns the stored record or the validation errors."),
		mcp.WithString("date",
			mcp.Description("Date of the drink (YYYY-MM-DD). Defaults to today."),
		),
		mcp.WithString("category",
			mcp.Required(),
			mcp.Description("Beverage category."),
			mcp.Enum(category.Keys()...),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("What was drunk, up to 100 characters."),
		),
		mcp.WithNumber("rating",
			mcp.Required(),
			mcp.Description("Rating from 1 to 5."),
			mcp.Min(1),
			mcp.Max(5),
		),
		mcp.WithString("store",
			mcp.Description("Where it was drunk, up to 100 characters."),
		),
		mcp.WithString("memo",
			mcp.Description("Tasting notes, up to 500 characters."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args record.Input
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		dto, err := svc.AddRecord(ctx, args)
		if err != nil {
			return validationResult(err), nil
		}
		return toJSONResult(dto)
	})
}

func registerUpdateRecordTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"update_record",
		mcp.WithDescription("Change fields of an existing record. Omitted fields keep their value; an empty store or memo clears it."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Record identifier."),
		),
		mcp.WithString("date", mcp.Description("New date (YYYY-MM-DD).")),
		mcp.WithString("category", mcp.Description("New category."), mcp.Enum(category.Keys()...)),
		mcp.WithString("name", mcp.Description("New name.")),
		mcp.WithNumber("rating", mcp.Description("New rating from 1 to 5.")),
		mcp.WithString("store", mcp.Description("New store.")),
		mcp.WithString("memo", mcp.Description("New memo.")),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		var args UpdateOptions
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		dto, err := svc.UpdateRecord(ctx, id, args)
		if err != nil {
			return validationResult(err), nil
		}
		return toJSONResult(dto)
	})
}

func registerDeleteRecordTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_record",
		mcp.WithDescription("Delete a record. Deleting an unknown id is not an error."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Record identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		deleted, err := svc.DeleteRecord(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"id": id, "deleted": deleted})
	})
}

func registerRecordStatsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"record_stats",
		mcp.WithDescription("Category shares, rating distribution, favourite category and best record for a period."),
		mcp.WithString("period",
			mcp.Description(`"all", "week", "month" or a window such as "3d" or "2w". Defaults to all.`),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		rep, err := svc.Stats(ctx, request.GetString("period", "all"))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(rep)
	})
}

func registerMonthCalendarTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"month_calendar",
		mcp.WithDescription("Sunday-first month grid with up to three category markers per day."),
		mcp.WithString("month",
			mcp.Description("Month as YYYY-MM. Defaults to the current month."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.MonthCalendar(ctx, request.GetString("month", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerPremiumStatusTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"premium_status",
		mcp.WithDescription("Whether premium has been purchased, and when."),
	)

	srv.AddTool(tool, func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toJSONResult(svc.Premium(ctx))
	})
}

func validationResult(err error) *mcp.CallToolResult {
	var verr *record.ValidationError
	if !errors.As(err, &verr) {
		return mcp.NewToolResultError(err.Error())
	}
	result, jerr := mcp.NewToolResultJSON(map[string]any{
		"error":  "invalid record",
		"fields": verr.Fields,
	})
	if jerr != nil {
		return mcp.NewToolResultError(err.Error())
	}
	result.IsError = true
	return result
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
