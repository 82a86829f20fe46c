// Package main provides a simple terminal client for the chat backend.
package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

// Message types mirrored from the server's WebSocket protocol.
const (
	TypeChat  = "chat"
	TypeDelta = "delta"
	TypeDone  = "done"
	TypeError = "error"
)

// ChatMessage starts a chat turn.
type ChatMessage struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
	Content   string `json:"content"`
}

// ServerMessage covers every frame the server sends back.
type ServerMessage struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id,omitempty"`
	Text      string `json:"text,omitempty"`
	MessageID string `json:"message_id,omitempty"`
	Code      string `json:"code,omitempty"`
	Message   string `json:"message,omitempty"`
}

// Session mirrors the server's session record.
type Session struct {
	SessionID string    `json:"session_id"`
	Title     string    `json:"title,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryMessage mirrors one stored turn.
type HistoryMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client talks to the chat backend.
type Client struct {
	apiURL     string
	wsURL      string
	httpClient *http.Client
	sessionID  string
}

func main() {
	apiURL := flag.String("api", "http://localhost:8000", "base URL of the chat backend")
	flag.Parse()

	client := &Client{
		apiURL:     strings.TrimSuffix(*apiURL, "/"),
		wsURL:      deriveWSURL(*apiURL),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}

	fmt.Println("LLM Chat CLI")
	reader := bufio.NewReader(os.Stdin)
	for {
		printMenu(client.sessionID)
		choice, err := reader.ReadString('\n')
		if err != nil {
			return
		}

		switch strings.TrimSpace(choice) {
		case "1":
			client.listSessions()
		case "2":
			client.newSession()
		case "3":
			client.switchSession(reader)
		case "4":
			client.showHistory()
		case "5":
			client.chat(reader)
		case "6":
			client.deleteSession()
		case "7":
			fmt.Println("Goodbye!")
			return
		default:
			fmt.Println("Invalid choice")
		}
	}
}

func printMenu(sessionID string) {
	fmt.Println("\n=== Menu ===")
	if sessionID != "" {
		fmt.Printf("(current session: %s)\n", sessionID)
	}
	fmt.Println("1. List sessions")
	fmt.Println("2. New session")
	fmt.Println("3. Switch session")
	fmt.Println("4. Show history")
	fmt.Println("5. Chat")
	fmt.Println("6. Delete current session")
	fmt.Println("7. Exit")
	fmt.Print("> ")
}

func (c *Client) listSessions() {
	var resp struct {
		Sessions []Session `json:"sessions"`
	}
	if err := c.getJSON("/v1/sessions", &resp); err != nil {
		fmt.Printf("Failed to list sessions: %v\n", err)
		return
	}
	if len(resp.Sessions) == 0 {
		fmt.Println("No sessions yet.")
		return
	}
	for _, s := range resp.Sessions {
		title := s.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Printf("  %s  %s\n", s.SessionID, title)
	}
}

func (c *Client) newSession() {
	var session Session
	if err := c.postJSON("/v1/sessions", map[string]string{}, &session); err != nil {
		fmt.Printf("Failed to create session: %v\n", err)
		return
	}
	c.sessionID = session.SessionID
	fmt.Printf("Created session %s\n", session.SessionID)
}

func (c *Client) switchSession(reader *bufio.Reader) {
	fmt.Print("Session id: ")
	id, err := reader.ReadString('\n')
	if err != nil {
		return
	}
	c.sessionID = strings.TrimSpace(id)
}

func (c *Client) showHistory() {
	if c.sessionID == "" {
		fmt.Println("No session selected.")
		return
	}
	var resp struct {
		Messages []HistoryMessage `json:"messages"`
	}
	if err := c.getJSON("/v1/sessions/"+c.sessionID+"/messages", &resp); err != nil {
		fmt.Printf("Failed to get history: %v\n", err)
		return
	}
	for _, m := range resp.Messages {
		fmt.Printf("[%s] %s\n", m.Role, m.Content)
	}
}

// chat opens a WebSocket connection and relays turns until the user types
// /quit.
func (c *Client) chat(reader *bufio.Reader) {
	if c.sessionID == "" {
		fmt.Println("No session selected.")
		return
	}

	conn, _, err := websocket.DefaultDialer.Dial(c.wsURL+"/v1/chat/ws", nil)
	if err != nil {
		fmt.Printf("Failed to connect: %v\n", err)
		return
	}
	defer conn.Close()

	fmt.Println("Connected. Type a message, or /quit to leave.")
	for {
		fmt.Print("you> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if line == "/quit" {
			return
		}
		if line == "" {
			continue
		}

		if err := conn.WriteJSON(ChatMessage{Type: TypeChat, SessionID: c.sessionID, Content: line}); err != nil {
			fmt.Printf("Failed to send: %v\n", err)
			return
		}

		if !c.readReply(conn) {
			return
		}
	}
}

// readReply prints deltas until a done or error frame. Returns false when
// the connection is no longer usable.
func (c *Client) readReply(conn *websocket.Conn) bool {
	fmt.Print("assistant> ")
	for {
		var msg ServerMessage
		if err := conn.ReadJSON(&msg); err != nil {
			fmt.Printf("\nConnection lost: %v\n", err)
			return false
		}

		switch msg.Type {
		case TypeDelta:
			fmt.Print(msg.Text)
		case TypeDone:
			fmt.Println()
			return true
		case TypeError:
			fmt.Printf("\n[error %s] %s\n", msg.Code, msg.Message)
			return true
		}
	}
}

func (c *Client) deleteSession() {
	if c.sessionID == "" {
		fmt.Println("No session selected.")
		return
	}
	req, err := http.NewRequest(http.MethodDelete, c.apiURL+"/v1/sessions/"+c.sessionID, nil)
	if err != nil {
		fmt.Printf("Failed to build request: %v\n", err)
		return
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		fmt.Printf("Failed to delete session: %v\n", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		fmt.Printf("Delete failed with status %d\n", resp.StatusCode)
		return
	}
	fmt.Printf("Deleted session %s\n", c.sessionID)
	c.sessionID = ""
}

func (c *Client) getJSON(path string, out interface{}) error {
	resp, err := c.httpClient.Get(c.apiURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) postJSON(path string, body, out interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Post(c.apiURL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func deriveWSURL(apiURL string) string {
	wsURL := strings.TrimSuffix(apiURL, "/")
	wsURL = strings.Replace(wsURL, "https://", "wss://", 1)
	wsURL = strings.Replace(wsURL, "http://", "ws://", 1)
	return wsURL
}
