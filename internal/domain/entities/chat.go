package entities

import "encoding/json"

// ChatMessage is one turn in a conversation with the agent
type ChatMessage struct {
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
}

// ToolCall is a tool invocation requested by the agent
type ToolCall struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// AgentReply is one model response: either assistant text, tool calls to
// execute, or both.
type AgentReply struct {
	Content   string
	ToolCalls []ToolCall
}
