package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerRecordsResource(srv, svc)
	registerRecordTemplate(srv, svc)
	registerCategoriesResource(srv)
}

func registerRecordsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"nomilog://records",
		"Records",
		mcp.WithResourceDescription("Every diary record, newest first."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		records, err := svc.ListRecords(ctx, ListOptions{})
		if err != nil {
			return nil, err
		}
		payload := map[string]any{
			"records": records,
			"count":   len(records),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerRecordTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"nomilog://records/{id}",
		"Record Details",
		mcp.WithTemplateDescription("A single diary record."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id := templateArg(request.Params.Arguments["id"])
		if id == "" {
			return nil, fmt.Errorf("record id is required")
		}
		dto, err := svc.GetRecord(ctx, id)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{"record": dto})
	})
}

func registerCategoriesResource(srv *server.MCPServer) {
	resource := mcp.NewResource(
		"nomilog://categories",
		"Categories",
		mcp.WithResourceDescription("Beverage categories in display order with marker colors."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(_ context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return encodeResourceJSON(request.Params.URI, map[string]any{"categories": Categories()})
	})
}

// templateArg accepts both the plain and the list form URI template
// arguments arrive in.
func templateArg(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		if len(t) > 0 {
			return t[0]
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
