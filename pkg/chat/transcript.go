// Package chat models the two-party transcript the parser consumes.
package chat

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"
)

// Role tags which side of the negotiation a message came from.
type Role int

const (
	// RoleProposer supplies intent and context: matchups, lines, leagues.
	RoleProposer Role = iota
	// RoleConfirmer supplies commitment (a stake) or rejection.
	RoleConfirmer
)

func (r Role) String() string {
	if r == RoleConfirmer {
		return "confirmer"
	}
	return "proposer"
}

// ParseRole maps a transcript role string to a Role.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "proposer", "p":
		return RoleProposer, nil
	case "confirmer", "c":
		return RoleConfirmer, nil
	default:
		return RoleProposer, fmt.Errorf("unknown role %q", s)
	}
}

// Message is a single transcript entry. Timestamp is already normalized to
// the conversation's local zone; Seq is the original stream position and
// breaks ordering ties.
type Message struct {
	Role      Role
	Timestamp time.Time
	Text      string
	Seq       int
}

// rawMessage is the JSONL wire form. Timestamps carry an explicit offset.
type rawMessage struct {
	Role string `json:"role"`
	TS   string `json:"ts"`
	Text string `json:"text"`
}

// ReadTranscript decodes a JSONL transcript and normalizes every timestamp
// to loc. Messages come back in strict chronological order with stream
// position as the tiebreak; context carry-over depends on that order.
func ReadTranscript(r io.Reader, loc *time.Location) ([]Message, error) {
	if loc == nil {
		loc = time.Local
	}

	var msgs []Message
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		var raw rawMessage
		if err := json.Unmarshal([]byte(text), &raw); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		role, err := ParseRole(raw.Role)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		ts, err := time.Parse(time.RFC3339, raw.TS)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad timestamp %q: %w", line, raw.TS, err)
		}

		msgs = append(msgs, Message{
			Role:      role,
			Timestamp: ts.In(loc),
			Text:      raw.Text,
			Seq:       len(msgs),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading transcript: %w", err)
	}

	sort.SliceStable(msgs, func(i, j int) bool {
		if msgs[i].Timestamp.Equal(msgs[j].Timestamp) {
			return msgs[i].Seq < msgs[j].Seq
		}
		return msgs[i].Timestamp.Before(msgs[j].Timestamp)
	})

	return msgs, nil
}

// ReadTranscriptFile opens and decodes a JSONL transcript file.
func ReadTranscriptFile(path string, loc *time.Location) ([]Message, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening transcript: %w", err)
	}
	defer f.Close()
	return ReadTranscript(f, loc)
}
