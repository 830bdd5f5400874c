package models

import "iter"

type Notification struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Message       string  `json:"message"`
	RecipientType string  `json:"recipientType"`
	Recipients    int     `json:"recipients"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"createdAt"`
	ScheduledFor  *string `json:"scheduledFor"`
}

func (n Notification) Fields() iter.Seq2[string, any] {
	return seq(
		field{"id", n.ID},
		field{"title", n.Title},
		field{"message", n.Message},
		field{"recipientType", n.RecipientType},
		field{"recipients", n.Recipients},
		field{"status", n.Status},
		field{"createdAt", n.CreatedAt},
		field{"scheduledFor", opt(n.ScheduledFor)},
	)
}
