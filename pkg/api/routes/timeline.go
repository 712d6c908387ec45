package routes

import (
	"bytes"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/railboard/railboard/pkg/timeline"
	"github.com/railboard/railboard/pkg/timetable"
	"github.com/railboard/railboard/pkg/traincache"
)

func TimelineRouter(router fiber.Router, trainCache *traincache.TrainCache) {
	handler := &timelineHandler{trainCache: trainCache}

	router.Get("/trains", handler.renderTimeline)
	router.Get("/trains/+", handler.renderTimeline)
	router.Get("/document", handler.getDocument)
}

type timelineHandler struct {
	trainCache *traincache.TrainCache
}

// requestedStations accepts station codes either as a comma separated
// stations query parameter or as path segments (/trains/NYP/NWK/PHL).
func (handler *timelineHandler) requestedStations(c *fiber.Ctx) []string {
	if stationsQuery := c.Query("stations"); stationsQuery != "" {
		return timetable.NormaliseStationCodes(strings.Split(stationsQuery, ","))
	}

	if wildcard := c.Params("+"); wildcard != "" {
		return timetable.NormaliseStationCodes(strings.Split(wildcard, "/"))
	}

	return nil
}

func bufferParameter(c *fiber.Ctx, name string) (time.Duration, bool) {
	minutes, err := strconv.Atoi(c.Query(name, "0"))
	if err != nil || minutes < 0 {
		return 0, false
	}

	return time.Duration(minutes) * time.Minute, true
}

func (handler *timelineHandler) renderTimeline(c *fiber.Ctx) error {
	stations := handler.requestedStations(c)
	if len(stations) < 2 {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "At least two station codes are required",
		})
	}

	bufferBefore, ok := bufferParameter(c, "buffer_before")
	if !ok {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter buffer_before should be a non-negative number of minutes",
		})
	}
	bufferAfter, ok := bufferParameter(c, "buffer_after")
	if !ok {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter buffer_after should be a non-negative number of minutes",
		})
	}

	cached, err := handler.trainCache.Get(c.Context(), stations)
	if err != nil {
		c.SendStatus(fiber.StatusBadGateway)
		return c.JSON(fiber.Map{
			"error": "Could not fetch train data",
		})
	}

	if len(cached.Document.Trains) == 0 {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "No trains connect the requested stations",
		})
	}

	// The timeline always starts from the request time, not the fetch time, so
	// a stale cache entry still renders in the right place
	canvas, err := timeline.Render(timeline.Request{
		Trains:       cached.Document.Trains,
		Stations:     cached.Document.Stations,
		Now:          time.Now(),
		BufferBefore: bufferBefore,
		BufferAfter:  bufferAfter,
		CacheAge:     cached.Age(),
	})
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not render timeline",
		})
	}

	var encoded bytes.Buffer
	if err := canvas.EncodePNG(&encoded); err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not encode timeline",
		})
	}

	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderContentType, "image/png")

	return c.Send(encoded.Bytes())
}

func (handler *timelineHandler) getDocument(c *fiber.Ctx) error {
	stations := handler.requestedStations(c)
	if len(stations) < 2 {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "At least two station codes are required",
		})
	}

	cached, err := handler.trainCache.Get(c.Context(), stations)
	if err != nil {
		c.SendStatus(fiber.StatusBadGateway)
		return c.JSON(fiber.Map{
			"error": "Could not fetch train data",
		})
	}

	documentReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, cached.Document)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce document",
		})
	}

	return c.JSON(fiber.Map{
		"fetched_at": cached.FetchedAt,
		"document":   documentReduced,
	})
}
