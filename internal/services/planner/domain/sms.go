package domain

// SmsStats aggregates a client's SMS log for the dashboard stat cards.
type SmsStats struct {
	Total        int
	Sent         int
	Delivered    int
	Failed       int
	DeliveryRate float64
}

// ComputeSmsStats folds a message log into aggregate counts.
//
// DeliveryRate is delivered over delivered+sent+failed outbound messages;
// queued and inbound messages do not count against the rate.
func ComputeSmsStats(messages []SmsMessage) SmsStats {
	stats := SmsStats{Total: len(messages)}
	attempted := 0
	for _, msg := range messages {
		if msg.Direction != SmsDirectionOutbound {
			continue
		}
		switch msg.Status {
		case SmsStatusSent:
			stats.Sent++
			attempted++
		case SmsStatusDelivered:
			stats.Delivered++
			attempted++
		case SmsStatusFailed:
			stats.Failed++
			attempted++
		}
	}
	if attempted > 0 {
		stats.DeliveryRate = float64(stats.Delivered) / float64(attempted)
	}
	return stats
}
