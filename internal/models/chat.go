package models

import "time"

// Message senders.
const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
	SenderTool      = "tool"
)

// LastMessage is the denormalized summary of a thread's most recent message.
type LastMessage struct {
	Content   string    `json:"content"   bson:"content"`
	Sender    string    `json:"sender"    bson:"sender"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
	Author    string    `json:"author,omitempty" bson:"author,omitempty"`
}

// Thread is a chat conversation stored in MongoDB.
type Thread struct {
	ID           string       `json:"id"            bson:"_id"`
	Title        string       `json:"title"         bson:"title"`
	CreatedAt    time.Time    `json:"created_at"    bson:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"    bson:"updated_at"`
	CreatedBy    string       `json:"created_by,omitempty" bson:"created_by,omitempty"`
	MessageCount int          `json:"message_count" bson:"message_count"`
	LastMessage  *LastMessage `json:"last_message"  bson:"last_message,omitempty"`
}

// Attachment references an uploaded file associated with a message.
type Attachment struct {
	ID   string `json:"id"             bson:"id"`
	Name string `json:"name,omitempty" bson:"name,omitempty"`
	Type string `json:"type,omitempty" bson:"type,omitempty"`
	Size int64  `json:"size,omitempty" bson:"size,omitempty"`
	URL  string `json:"url,omitempty"  bson:"url,omitempty"`
}

// Reference is a citation attached to an assistant message.
type Reference struct {
	Title string `json:"title" bson:"title"`
	URL   string `json:"url"   bson:"url"`
}

// ToolInvocation records one tool call the agent made during a turn.
type ToolInvocation struct {
	Name      string `json:"name"      bson:"name"`
	Arguments string `json:"arguments" bson:"arguments"`
	Output    string `json:"output,omitempty" bson:"output,omitempty"`
	Error     string `json:"error,omitempty"  bson:"error,omitempty"`
}

// TraceMessage is one entry of the underlying model conversation.
type TraceMessage struct {
	Role    string `json:"role"    bson:"role"`
	Content string `json:"content" bson:"content"`
}

// MessageMetadata holds optional extras on a message: attachments,
// citations, the tool-call trace and the raw model conversation.
type MessageMetadata struct {
	Attachments []Attachment     `json:"attachments,omitempty" bson:"attachments,omitempty"`
	References  []Reference      `json:"references,omitempty"  bson:"references,omitempty"`
	Analysis    map[string]any   `json:"analysis,omitempty"    bson:"analysis,omitempty"`
	ToolCalls   []ToolInvocation `json:"tool_calls,omitempty"  bson:"tool_calls,omitempty"`
	Messages    []TraceMessage   `json:"messages,omitempty"    bson:"messages,omitempty"`
	Model       string           `json:"model,omitempty"       bson:"model,omitempty"`
}

// Message is one immutable chat message within a thread.
type Message struct {
	ID        string           `json:"id"        bson:"_id"`
	ThreadID  string           `json:"thread_id" bson:"thread_id"`
	Content   string           `json:"content"   bson:"content"`
	Sender    string           `json:"sender"    bson:"sender"`
	Timestamp time.Time        `json:"timestamp" bson:"timestamp"`
	Author    string           `json:"author,omitempty"   bson:"author,omitempty"`
	Metadata  *MessageMetadata `json:"metadata,omitempty" bson:"metadata,omitempty"`
}

// ThreadWithMessages is a thread plus its messages ordered by timestamp.
type ThreadWithMessages struct {
	Thread
	Messages []Message `json:"messages"`
}

// ThreadList is one page of threads plus the total count.
type ThreadList struct {
	Threads []Thread `json:"threads"`
	Total   int64    `json:"total"`
}

// CreateThreadRequest is the JSON body for POST /chat/threads.
type CreateThreadRequest struct {
	Title string `json:"title"`
}

// UpdateThreadRequest is the JSON body for PATCH /chat/threads/{id}.
type UpdateThreadRequest struct {
	Title string `json:"title"`
}

// SendMessageRequest is the JSON body for POST /chat/threads/{id}/messages.
type SendMessageRequest struct {
	Content     string       `json:"content"`
	Attachments []Attachment `json:"attachments,omitempty"`
	Stream      bool         `json:"stream,omitempty"`
}
