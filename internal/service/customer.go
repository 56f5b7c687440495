package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"self-order-agent/internal/model"
)

type CustomerService interface {
	// CollectCustomerInfo stamps the supplied contact details with a
	// session id and timestamp. Pure transformation: nothing is validated
	// or persisted.
	CollectCustomerInfo(name, email, phone string) model.CollectCustomerInfoResult
}

type customerServiceImpl struct{}

func NewCustomerService() CustomerService {
	return &customerServiceImpl{}
}

func (s *customerServiceImpl) CollectCustomerInfo(name, email, phone string) model.CollectCustomerInfoResult {
	info := model.CustomerInfo{
		Name:      name,
		Email:     email,
		Phone:     phone,
		Timestamp: time.Now(),
		SessionID: uuid.NewString(),
	}

	return model.CollectCustomerInfoResult{
		Status:       model.StatusSuccess,
		CustomerInfo: info,
		Message:      fmt.Sprintf("Thank you %s! I've collected your information for this order.", name),
	}
}
