package handler

import (
	"github.com/gofiber/fiber/v2"

	"portfolioapi/internal/service"
)

// GetTodayStatistic godoc
// @Summary Get today's statistics
// @Description Returns today's counter record, creating an all-zero one if the day has no traffic yet.
// @Tags statistics
// @Produce json
// @Success 200 {object} model.Statistic
// @Router /api/statistics/today [get]
func GetTodayStatistic(svc service.StatisticService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stat, err := svc.GetOrCreateToday(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(stat)
	}
}

// GetStatisticRange godoc
// @Summary Get statistics for a date range
// @Tags statistics
// @Produce json
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Success 200 {array} model.Statistic
// @Failure 400 {object} errorPayload
// @Router /api/statistics/range [get]
func GetStatisticRange(svc service.StatisticService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := svc.GetRange(c.UserContext(), c.Query("start_date"), c.Query("end_date"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(stats)
	}
}
