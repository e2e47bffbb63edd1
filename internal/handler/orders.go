package handler

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/nhdewitt/http-router/internal/headers"
	"github.com/nhdewitt/http-router/internal/request"
	"github.com/nhdewitt/http-router/internal/response"
	"github.com/nhdewitt/http-router/internal/router"
)

const ordersFile = "orders.json"

type OrderStatus struct {
	OrderID     int    `json:"order_id"`
	OrderStatus string `json:"order_status"`
	OrderDate   string `json:"order_date"`
}

// Orders is the shipping web service backed by a JSON file.
type Orders struct {
	dataDir string
	logger  *zap.Logger
}

func NewOrders(dataDir string, logger *zap.Logger) *Orders {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orders{dataDir: dataDir, logger: logger}
}

func (o *Orders) Load() ([]OrderStatus, error) {
	b, err := os.ReadFile(filepath.Join(o.dataDir, ordersFile))
	if err != nil {
		return nil, fmt.Errorf("read orders: %w", err)
	}
	var orders []OrderStatus
	if err := json.Unmarshal(b, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

func (o *Orders) List(*request.Request) *response.Response {
	orders, err := o.Load()
	if err != nil {
		o.logger.Error("load orders failed", zap.Error(err))
		return response.New(response.StatusInternalServerError, nil, "Internal Server Error")
	}
	body, err := json.Marshal(orders)
	if err != nil {
		o.logger.Error("encode orders failed", zap.Error(err))
		return response.New(response.StatusInternalServerError, nil, "Internal Server Error")
	}
	h := headers.NewHeaders()
	h.Set("Content-Type", "application/json")
	return response.New(response.StatusOK, h, string(body))
}

// Mount registers GET <prefix>/shipping/orders on the given group.
func (o *Orders) Mount(api *router.Group) error {
	return api.Group("shipping").Get("/orders", o.List)
}
