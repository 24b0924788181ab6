package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new shipping order.
// Carries the recipient, the parcel dimensions, the declared value and the
// requested service level.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, customerID, recipient, dims,
//	    declaredValue, order.ServiceTypeStandard)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, clock)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerID    kernel.UUID
	recipient     order.Recipient
	dimensions    order.Dimensions
	declaredValue kernel.Money
	serviceType   order.ServiceType

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new shipping order.
// All parts are validated; failures are joined into a single error.
func NewCreateOrderCommand(orderID kernel.UUID, customerID kernel.UUID,
	recipient order.Recipient, dimensions order.Dimensions,
	declaredValue kernel.Money, serviceType order.ServiceType,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setRecipient(recipient),
		orderCommand.setDimensions(dimensions),
		orderCommand.setDeclaredValue(declaredValue),
		orderCommand.setServiceType(serviceType),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the customer placing the order.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Recipient returns the delivery recipient.
func (c CreateOrderCommand) Recipient() order.Recipient {
	return c.recipient
}

// Dimensions returns the parcel dimensions.
func (c CreateOrderCommand) Dimensions() order.Dimensions {
	return c.dimensions
}

// DeclaredValue returns the declared value of the parcel.
func (c CreateOrderCommand) DeclaredValue() kernel.Money {
	return c.declaredValue
}

// ServiceType returns the requested service level.
func (c CreateOrderCommand) ServiceType() order.ServiceType {
	return c.serviceType
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customerID", err)
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setRecipient(recipient order.Recipient) error {
	if err := recipient.Validate(); err != nil {
		return err
	}

	c.recipient = recipient
	return nil
}

func (c *CreateOrderCommand) setDimensions(dimensions order.Dimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}

	c.dimensions = dimensions
	return nil
}

func (c *CreateOrderCommand) setDeclaredValue(declaredValue kernel.Money) error {
	if err := declaredValue.Validate(); err != nil {
		return err
	}

	c.declaredValue = declaredValue
	return nil
}

func (c *CreateOrderCommand) setServiceType(serviceType order.ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}

	c.serviceType = serviceType
	return nil
}
