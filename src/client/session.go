package client

import (
	"context"
	"errors"

	"Backend-Aavishkar/src/models"
	"Backend-Aavishkar/src/view"
)

// ErrUnknownEvent ไม่พบ event ที่ขอใน /api/events
var ErrUnknownEvent = errors.New("unknown event")

// LoadSession ดึง event + roster + attendance แล้วประกอบเป็น view.Session
// ลำดับเหมือนหน้าเว็บ fetch ทั้งสามอย่างก่อนแสดงผลครั้งแรก
func (c *Client) LoadSession(ctx context.Context, eventID string) (*view.Session, error) {
	events, err := c.Events(ctx)
	if err != nil {
		return nil, err
	}

	var event *models.Event
	for i := range events {
		if events[i].ID.Hex() == eventID {
			event = &events[i]
			break
		}
	}
	if event == nil {
		return nil, ErrUnknownEvent
	}

	solo, groups, err := c.Participants(ctx, eventID)
	if err != nil {
		return nil, err
	}
	records, err := c.Attendance(ctx, eventID)
	if err != nil {
		return nil, err
	}

	session := view.NewSession(*event)
	session.LoadParticipants(solo, groups)
	session.LoadAttendance(records)
	return session, nil
}

// RefreshAttendance ดึง attendance รอบใหม่เข้า session
// เรียกหลังทุก mutation ที่สำเร็จ ไม่แก้ state ฝั่ง client เอง
func (c *Client) RefreshAttendance(ctx context.Context, s *view.Session) error {
	records, err := c.Attendance(ctx, s.Event.ID.Hex())
	if err != nil {
		return err // snapshot เดิมยังใช้ต่อได้
	}
	s.LoadAttendance(records)
	return nil
}

// MarkEntry ส่ง entry แล้ว refetch attendance ของ session
func (c *Client) MarkEntry(ctx context.Context, s *view.Session, userID string) error {
	if _, err := c.RecordAction(ctx, userID, s.Event.ID.Hex(), models.ActionEntry); err != nil {
		return err
	}
	return c.RefreshAttendance(ctx, s)
}

// MarkExit ส่ง exit แล้ว refetch attendance ของ session
func (c *Client) MarkExit(ctx context.Context, s *view.Session, userID string) error {
	if _, err := c.RecordAction(ctx, userID, s.Event.ID.Hex(), models.ActionExit); err != nil {
		return err
	}
	return c.RefreshAttendance(ctx, s)
}

// OverrideStatus เปลี่ยนสถานะด้วยมือ แล้ว refetch attendance ของ session
func (c *Client) OverrideStatus(ctx context.Context, s *view.Session, userID, status string) error {
	if _, err := c.SetStatus(ctx, userID, s.Event.ID.Hex(), status); err != nil {
		return err
	}
	return c.RefreshAttendance(ctx, s)
}
