package main

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/narust/reasoner/internal/command"
	"github.com/narust/reasoner/internal/reasoner"
)

// ToolServer adapts one command.Dispatcher to a set of MCP tools, one per
// NAVM verb family: submit (NSE), cycle (CYC), info (INF), save (SAV),
// load (LOA), reset (RES).
type ToolServer struct {
	dispatcher *command.Dispatcher
}

// NewToolServer wraps a dispatcher for MCP registration.
func NewToolServer(d *command.Dispatcher) *ToolServer {
	return &ToolServer{dispatcher: d}
}

// RegisterTools installs every tool this server exposes onto mcpServer.
func (s *ToolServer) RegisterTools(mcpServer *mcp.Server) {
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "submit",
		Description: "Submit one Narsese sentence as an input task",
	}, s.handleSubmit)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "cycle",
		Description: "Run N work-cycle steps and return the derivations they produced",
	}, s.handleCycle)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "info",
		Description: "Report engine state for a target (memory, concepts, links, tasks, beliefs, questions, summary, parameters, lineage, search-semantic)",
	}, s.handleInfo)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "save",
		Description: "Serialize the reasoner's memory and task buffer, inline or to a named store path",
	}, s.handleSave)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "load",
		Description: "Replace the reasoner's state from a previously saved payload or store path",
	}, s.handleLoad)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "reset",
		Description: "Clear memory, the task buffer and the clocks",
	}, s.handleReset)
}

// OutputRecord mirrors one reasoner.Output as a JSON-friendly value.
type OutputRecord struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

func toRecords(outs []reasoner.Output) []OutputRecord {
	records := make([]OutputRecord, len(outs))
	for i, o := range outs {
		records[i] = OutputRecord{Kind: string(o.Kind), Text: o.Text}
	}
	return records
}

// SubmitRequest carries one Narsese sentence body (no NSE prefix needed).
type SubmitRequest struct {
	Sentence string `json:"sentence"`
}

// SubmitResponse reports the resulting IN record, or an ERROR record on a
// parse failure.
type SubmitResponse struct {
	Outputs []OutputRecord `json:"outputs"`
}

func (s *ToolServer) handleSubmit(ctx context.Context, req *mcp.CallToolRequest, input SubmitRequest) (*mcp.CallToolResult, *SubmitResponse, error) {
	if input.Sentence == "" {
		return nil, nil, fmt.Errorf("submit: missing sentence")
	}
	outs := s.dispatcher.Execute(ctx, "NSE "+input.Sentence)
	return nil, &SubmitResponse{Outputs: toRecords(outs)}, nil
}

// CycleRequest carries the number of work-cycle steps to run.
type CycleRequest struct {
	Count int `json:"count"`
}

// CycleResponse reports every derivation/comment/answer produced.
type CycleResponse struct {
	Outputs []OutputRecord `json:"outputs"`
}

func (s *ToolServer) handleCycle(ctx context.Context, req *mcp.CallToolRequest, input CycleRequest) (*mcp.CallToolResult, *CycleResponse, error) {
	n := input.Count
	if n <= 0 {
		n = 1
	}
	outs := s.dispatcher.Execute(ctx, fmt.Sprintf("CYC %d", n))
	return nil, &CycleResponse{Outputs: toRecords(outs)}, nil
}

// InfoRequest names an INF target and whether to ask for -detailed output.
type InfoRequest struct {
	Target   string `json:"target"`
	Detailed bool   `json:"detailed"`
}

// InfoResponse reports the requested engine-state summary.
type InfoResponse struct {
	Outputs []OutputRecord `json:"outputs"`
}

func (s *ToolServer) handleInfo(ctx context.Context, req *mcp.CallToolRequest, input InfoRequest) (*mcp.CallToolResult, *InfoResponse, error) {
	if input.Target == "" {
		return nil, nil, fmt.Errorf("info: missing target")
	}
	line := "INF " + input.Target
	if input.Detailed {
		line += " -detailed"
	}
	outs := s.dispatcher.Execute(ctx, line)
	return nil, &InfoResponse{Outputs: toRecords(outs)}, nil
}

// SaveRequest names the save target ("memory" or "status") and an
// optional store path; an empty path asks for the payload back inline.
type SaveRequest struct {
	Target string `json:"target"`
	Path   string `json:"path,omitempty"`
}

// SaveResponse reports the SAV command's single INFO/ERROR record.
type SaveResponse struct {
	Outputs []OutputRecord `json:"outputs"`
}

func (s *ToolServer) handleSave(ctx context.Context, req *mcp.CallToolRequest, input SaveRequest) (*mcp.CallToolResult, *SaveResponse, error) {
	target := input.Target
	if target == "" {
		target = "status"
	}
	line := "SAV " + target
	if input.Path != "" {
		line += " " + input.Path
	} else {
		line += ` ""`
	}
	outs := s.dispatcher.Execute(ctx, line)
	return nil, &SaveResponse{Outputs: toRecords(outs)}, nil
}

// LoadRequest names the load target and either an inline base64 payload
// or a store path.
type LoadRequest struct {
	Target  string `json:"target"`
	Payload string `json:"payload"`
}

// LoadResponse reports the LOA command's single INFO/ERROR record.
type LoadResponse struct {
	Outputs []OutputRecord `json:"outputs"`
}

func (s *ToolServer) handleLoad(ctx context.Context, req *mcp.CallToolRequest, input LoadRequest) (*mcp.CallToolResult, *LoadResponse, error) {
	target := input.Target
	if target == "" {
		target = "status"
	}
	if input.Payload == "" {
		return nil, nil, fmt.Errorf("load: missing payload")
	}
	outs := s.dispatcher.Execute(ctx, fmt.Sprintf("LOA %s %s", target, input.Payload))
	return nil, &LoadResponse{Outputs: toRecords(outs)}, nil
}

// ResetRequest takes no parameters; present for a consistent typed shape.
type ResetRequest struct{}

// ResetResponse reports the RES command's single INFO record.
type ResetResponse struct {
	Outputs []OutputRecord `json:"outputs"`
}

func (s *ToolServer) handleReset(ctx context.Context, req *mcp.CallToolRequest, input ResetRequest) (*mcp.CallToolResult, *ResetResponse, error) {
	outs := s.dispatcher.Execute(ctx, "RES")
	return nil, &ResetResponse{Outputs: toRecords(outs)}, nil
}
