package jobs

import (
	"encoding/json"
	"errors"
	"time"

	"Backend-Aavishkar/src/database"

	"github.com/hibiken/asynq"
)

const TypeCloseEvent = "event:close"

type EventPayload struct {
	EventID string `json:"event_id"`
}

func NewCloseEventTask(eventID string) (*asynq.Task, error) {
	payload, err := json.Marshal(EventPayload{EventID: eventID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeCloseEvent, payload), nil
}

// ScheduleEventClose ตั้งเวลาปิด event หนึ่งงาน enqueue ซ้ำด้วย id เดิมจะถูกข้าม
func ScheduleEventClose(eventID string, at time.Time) error {
	if database.AsynqClient == nil {
		return nil // ไม่มี Redis ใน dev mode - ข้าม
	}

	task, err := NewCloseEventTask(eventID)
	if err != nil {
		return err
	}

	_, err = database.AsynqClient.Enqueue(task,
		asynq.ProcessAt(at),
		asynq.TaskID("event:close:"+eventID),
	)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		return nil // ตั้งไว้แล้วจากการ start รอบก่อน
	}
	return err
}
