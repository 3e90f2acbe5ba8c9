// Package client เป็น HTTP client ของ attendance API
// ใช้โดยหน้าจอ organizer และเครื่องมือหน้างาน
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"Backend-Aavishkar/src/models"
)

// Client เรียก attendance API ผ่าน base URL เดียว
type Client struct {
	baseURL string
	http    *http.Client
}

// New สร้าง client ใหม่ timeout 10 วินาทีเหมือน client ภายในตัวอื่น
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// APIError คำตอบที่ไม่ใช่ 2xx จาก server
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type apiEnvelope struct {
	Success      bool                      `json:"success"`
	Message      string                    `json:"message"`
	Attendance   json.RawMessage           `json:"attendance"`
	Events       []models.Event            `json:"events"`
	Participants json.RawMessage           `json:"participants"`
}

func (c *Client) do(ctx context.Context, method, path string, body any, out *apiEnvelope) error {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: out.Message}
	}
	return nil
}

// VerifyPassword ตรวจรหัสผ่านของ event รหัสผิดได้ *APIError status 401
func (c *Client) VerifyPassword(ctx context.Context, eventName, password string) error {
	var out apiEnvelope
	return c.do(ctx, http.MethodPost, "/api/verify-password",
		map[string]string{"eventName": eventName, "password": password}, &out)
}

// Events ดึง event ทั้งหมด
func (c *Client) Events(ctx context.Context) ([]models.Event, error) {
	var out apiEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/events", nil, &out); err != nil {
		return nil, err
	}
	return out.Events, nil
}

// Participants ดึง roster ของ event แยกรูปร่าง SOLO/GROUP จากการมี groupId
func (c *Client) Participants(ctx context.Context, eventID string) ([]models.User, []models.Group, error) {
	var out apiEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/event/"+url.PathEscape(eventID)+"/participants", nil, &out); err != nil {
		return nil, nil, err
	}
	if len(out.Participants) == 0 {
		return nil, nil, nil
	}

	var groups []models.Group
	if err := json.Unmarshal(out.Participants, &groups); err == nil &&
		len(groups) > 0 && groups[0].GroupID != "" {
		return nil, groups, nil
	}

	var solo []models.User
	if err := json.Unmarshal(out.Participants, &solo); err != nil {
		return nil, nil, err
	}
	return solo, nil, nil
}

// Attendance ดึง record ทั้งหมดของ event
func (c *Client) Attendance(ctx context.Context, eventID string) ([]models.AttendanceRecord, error) {
	var out apiEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/attendance?eventId="+url.QueryEscape(eventID), nil, &out); err != nil {
		return nil, err
	}
	var records []models.AttendanceRecord
	if len(out.Attendance) > 0 {
		if err := json.Unmarshal(out.Attendance, &records); err != nil {
			return nil, err
		}
	}
	return records, nil
}

// RecordAction ส่ง entry/exit ของ (userId, eventId)
func (c *Client) RecordAction(ctx context.Context, userID, eventID, action string) (*models.AttendanceRecord, error) {
	var out apiEnvelope
	err := c.do(ctx, http.MethodPost, "/api/attendance",
		map[string]string{"userId": userID, "eventId": eventID, "action": action}, &out)
	if err != nil {
		return nil, err
	}
	return decodeRecord(out.Attendance)
}

// SetStatus override สถานะของ record ที่มีอยู่แล้ว
func (c *Client) SetStatus(ctx context.Context, userID, eventID, status string) (*models.AttendanceRecord, error) {
	var out apiEnvelope
	err := c.do(ctx, http.MethodPut, "/api/attendance",
		map[string]string{"userId": userID, "eventId": eventID, "status": status}, &out)
	if err != nil {
		return nil, err
	}
	return decodeRecord(out.Attendance)
}

func decodeRecord(raw json.RawMessage) (*models.AttendanceRecord, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var record models.AttendanceRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, err
	}
	return &record, nil
}
