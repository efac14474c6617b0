package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openclinic/hms/internal/domain"
	"github.com/openclinic/hms/internal/store"
)

// ActivityHandler reads the activity log directly from the store; entries
// are written asynchronously by the services via ActivityService.
type ActivityHandler struct {
	store *store.Store
}

func NewActivityHandler(st *store.Store) *ActivityHandler {
	return &ActivityHandler{store: st}
}

func (h *ActivityHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListActivityLogs())
}

// Create appends an entry directly. Most entries arrive as async side
// effects of other operations; this path covers clients logging their own.
func (h *ActivityHandler) Create(c *gin.Context) {
	var cmd domain.CreateActivityLogCommand
	if !bindJSON(c, &cmd) {
		return
	}
	if cmd.UserID == nil {
		id := callerID(c)
		cmd.UserID = &id
	}
	c.JSON(http.StatusCreated, h.store.AppendActivityLog(&cmd))
}

func (h *ActivityHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	l, err := h.store.GetActivityLog(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

const defaultRecentLimit = 10

func (h *ActivityHandler) Recent(c *gin.Context) {
	limit := parseQueryInt(c, "limit", defaultRecentLimit)
	c.JSON(http.StatusOK, h.store.RecentActivityLogs(limit))
}
