package repositories

import "github.com/weldcell/sparetrack/pkg/domain/entities"

// SupportRepository provides access to support requests
type SupportRepository interface {
	GetRequest(id entities.SupportRequestID) (*entities.SupportRequest, error)
	GetRequestsForOrder(orderID entities.ReorderID) ([]*entities.SupportRequest, error)
	SaveRequest(request *entities.SupportRequest) error
}
