package services

import (
	"mindful-progress-system/models"
)

// EventHistory returns the user's raw event log, newest first, paginated.
// Events are immutable, so this view is stable under re-reads.
func (s *EngagementService) EventHistory(userID string, page, size int) (map[string]interface{}, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 20
	}
	offset := (page - 1) * size

	var total int64
	if err := s.DB.Model(&models.Event{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, err
	}

	var events []models.Event
	if err := s.DB.Where("user_id = ?", userID).
		Order("occurred_at DESC").
		Limit(size).Offset(offset).
		Find(&events).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(size) - 1) / int64(size))
	return map[string]interface{}{
		"events":      events,
		"page":        page,
		"size":        size,
		"total_items": total,
		"total_pages": totalPages,
	}, nil
}
