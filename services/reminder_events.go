package services

import "time"

type reminderEventDeps struct {
	rt *RealtimeHub
}

var _events reminderEventDeps

func InitReminderEvents(rt *RealtimeHub) {
	_events = reminderEventDeps{rt: rt}
}

// EmitReminderReplaced tells the user's connected devices that the scheduler
// replaced the reminder for a plant. Safe to call anywhere; a no-op when the
// hub is not initialized. No push notification is sent beyond this.
func EmitReminderReplaced(userID, plantID string, scheduledAt time.Time) {
	if _events.rt == nil {
		return
	}
	_events.rt.Broadcast(userID, map[string]any{
		"kind":         "reminder.replaced",
		"plant_id":     plantID,
		"scheduled_at": scheduledAt,
	})
}
