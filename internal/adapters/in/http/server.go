// Package http provides the inbound HTTP adapter for the movers service.
// It translates HTTP requests into commands and queries and maps domain
// errors onto status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"movers/internal/core/application/usecases/commands"
	"movers/internal/core/application/usecases/queries"
	"movers/internal/core/domain/model/kernel"
	"movers/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewMoverRequest is the request body for registering a mover.
type NewMoverRequest struct {
	Name        string `json:"name"`
	WeightLimit int    `json:"weightLimit"`
}

// NewItemRequest is the request body for registering an item.
type NewItemRequest struct {
	Name   string `json:"name"`
	Weight int    `json:"weight"`
}

// LoadMoverRequest is the request body for loading cargo onto a mover.
type LoadMoverRequest struct {
	ItemIDs []string `json:"itemIds"`
}

// CreatedResponse carries the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// MoverResponse is the mover representation in listings.
type MoverResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	WeightLimit       int       `json:"weightLimit"`
	QuestState        string    `json:"questState"`
	CurrentItems      []string  `json:"currentItems"`
	MissionsCompleted int       `json:"missionsCompleted"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// MoverListResponse is one page of the mover listing.
type MoverListResponse struct {
	Movers []MoverResponse `json:"movers"`
	Total  int             `json:"total"`
	Offset int             `json:"offset"`
	Limit  int             `json:"limit"`
}

// ItemResponse is the item representation in listings.
type ItemResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Weight    int       `json:"weight"`
	CreatedAt time.Time `json:"createdAt"`
}

// ActivityLogResponse is one transition record in a mover's history.
type ActivityLogResponse struct {
	ID        string    `json:"id"`
	MoverID   string    `json:"moverId"`
	Action    string    `json:"action"`
	ItemIDs   []string  `json:"itemIds"`
	CreatedAt time.Time `json:"createdAt"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createMoverHandler  commands.CreateMoverCommandHandler
	createItemHandler   commands.CreateItemCommandHandler
	loadMoverHandler    commands.LoadMoverCommandHandler
	startMissionHandler commands.StartMissionCommandHandler
	endMissionHandler   commands.EndMissionCommandHandler

	// Query handlers
	getMoversHandler       queries.GetMoversQueryHandler
	getItemsHandler        queries.GetItemsQueryHandler
	getActivityLogsHandler queries.GetMoverActivityLogsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createMoverHandler commands.CreateMoverCommandHandler,
	createItemHandler commands.CreateItemCommandHandler,
	loadMoverHandler commands.LoadMoverCommandHandler,
	startMissionHandler commands.StartMissionCommandHandler,
	endMissionHandler commands.EndMissionCommandHandler,
	getMoversHandler queries.GetMoversQueryHandler,
	getItemsHandler queries.GetItemsQueryHandler,
	getActivityLogsHandler queries.GetMoverActivityLogsQueryHandler,
) *Server {
	return &Server{
		createMoverHandler:     createMoverHandler,
		createItemHandler:      createItemHandler,
		loadMoverHandler:       loadMoverHandler,
		startMissionHandler:    startMissionHandler,
		endMissionHandler:      endMissionHandler,
		getMoversHandler:       getMoversHandler,
		getItemsHandler:        getItemsHandler,
		getActivityLogsHandler: getActivityLogsHandler,
	}
}

// RegisterRoutes attaches all endpoints to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/movers", s.CreateMover)
	api.GET("/movers", s.GetMovers)
	api.POST("/movers/:id/load", s.LoadMover)
	api.POST("/movers/:id/start-mission", s.StartMission)
	api.POST("/movers/:id/end-mission", s.EndMission)
	api.GET("/movers/:id/logs", s.GetMoverActivityLogs)

	api.POST("/items", s.CreateItem)
	api.GET("/items", s.GetItems)
}

// CreateMover handles POST /api/v1/movers - registers a new mover.
func (s *Server) CreateMover(ctx echo.Context) error {
	var request NewMoverRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	moverID := kernel.NewUUID()
	cmd, err := commands.NewCreateMoverCommand(moverID, request.Name, request.WeightLimit)
	if err != nil {
		return badRequest(ctx, "Invalid mover data: "+err.Error())
	}

	if err = s.createMoverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: moverID.String()})
}

// CreateItem handles POST /api/v1/items - registers a new item.
func (s *Server) CreateItem(ctx echo.Context) error {
	var request NewItemRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewCreateItemCommand(itemID, request.Name, request.Weight)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	if err = s.createItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: itemID.String()})
}

// LoadMover handles POST /api/v1/movers/:id/load - loads cargo onto a mover.
func (s *Server) LoadMover(ctx echo.Context) error {
	moverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid mover id")
	}

	var request LoadMoverRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	itemIDs := make([]kernel.UUID, 0, len(request.ItemIDs))
	for _, raw := range request.ItemIDs {
		itemID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return badRequest(ctx, "Invalid item id: "+raw)
		}
		itemIDs = append(itemIDs, itemID)
	}

	cmd, err := commands.NewLoadMoverCommand(moverID, itemIDs)
	if err != nil {
		return badRequest(ctx, "Invalid load request: "+err.Error())
	}

	if err = s.loadMoverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// StartMission handles POST /api/v1/movers/:id/start-mission.
func (s *Server) StartMission(ctx echo.Context) error {
	moverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid mover id")
	}

	cmd, err := commands.NewStartMissionCommand(moverID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if err = s.startMissionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// EndMission handles POST /api/v1/movers/:id/end-mission.
func (s *Server) EndMission(ctx echo.Context) error {
	moverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid mover id")
	}

	cmd, err := commands.NewEndMissionCommand(moverID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if err = s.endMissionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetMovers handles GET /api/v1/movers - one page of the mover listing,
// ranked by completed missions.
func (s *Server) GetMovers(ctx echo.Context) error {
	offset, limit, err := pageParams(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetMoversQuery(offset, limit)
	if err != nil {
		return badRequest(ctx, "Invalid page: "+err.Error())
	}

	page, err := s.getMoversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	movers := make([]MoverResponse, len(page.Movers))
	for i, m := range page.Movers {
		movers[i] = MoverResponse{
			ID:                m.ID.String(),
			Name:              m.Name,
			WeightLimit:       m.WeightLimit,
			QuestState:        m.QuestState,
			CurrentItems:      uuidStrings(m.CurrentItems),
			MissionsCompleted: m.MissionsCompleted,
			CreatedAt:         m.CreatedAt,
			UpdatedAt:         m.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, MoverListResponse{
		Movers: movers,
		Total:  page.Total,
		Offset: offset,
		Limit:  limit,
	})
}

// GetItems handles GET /api/v1/items - retrieves all items.
func (s *Server) GetItems(ctx echo.Context) error {
	items, err := s.getItemsHandler.Handle(ctx.Request().Context(), queries.NewGetItemsQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]ItemResponse, len(items))
	for i, it := range items {
		response[i] = ItemResponse{
			ID:        it.ID.String(),
			Name:      it.Name,
			Weight:    it.Weight,
			CreatedAt: it.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMoverActivityLogs handles GET /api/v1/movers/:id/logs - the mover's
// transition history, most recent first.
func (s *Server) GetMoverActivityLogs(ctx echo.Context) error {
	moverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid mover id")
	}

	query, err := queries.NewGetMoverActivityLogsQuery(moverID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	logs, err := s.getActivityLogsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]ActivityLogResponse, len(logs))
	for i, entry := range logs {
		response[i] = ActivityLogResponse{
			ID:        entry.ID.String(),
			MoverID:   entry.MoverID.String(),
			Action:    entry.Action,
			ItemIDs:   uuidStrings(entry.ItemIDs),
			CreatedAt: entry.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// pageParams reads the optional offset and limit query parameters.
func pageParams(ctx echo.Context) (offset, limit int, err error) {
	offset = 0
	limit = defaultPageLimit

	if raw := ctx.QueryParam("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return 0, 0, errors.New("offset must be a non-negative integer")
		}
	}

	if raw := ctx.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 || limit > maxPageLimit {
			return 0, 0, errors.New("limit must be an integer between 1 and " + strconv.Itoa(maxPageLimit))
		}
	}

	return offset, limit, nil
}

func uuidStrings(ids []kernel.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps domain failures onto status codes: missing objects are
// 404, rejected transitions and invalid values are 400, everything else
// is a 500.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrCapacityExceeded),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
