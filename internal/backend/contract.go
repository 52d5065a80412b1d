package backend

import (
	"context"
	"net/url"
	"strconv"

	"charterdesk/internal/backend/models"
)

func (c *Client) Contract(ctx context.Context, id int64) (*models.ContractExternal, error) {
	q := url.Values{"id": {strconv.FormatInt(id, 10)}}
	return one[models.ContractExternal](ctx, c, ServiceVessel, "/contractExternal/getById", q)
}

// VoyageByContractCode finds the execution voyage linked to a contract.
func (c *Client) VoyageByContractCode(ctx context.Context, contractCode string) (*models.VoyageRef, error) {
	q := url.Values{"contractCode": {contractCode}}
	return one[models.VoyageRef](ctx, c, ServiceVessel, "/externalVoyage/getVoyageByContractCode", q)
}

func (c *Client) ExternalVoyage(ctx context.Context, id int64) (*models.ExternalVoyage, error) {
	q := url.Values{"id": {strconv.FormatInt(id, 10)}}
	return one[models.ExternalVoyage](ctx, c, ServiceVessel, "/externalVoyage/getById", q)
}

func (c *Client) VerificationDetail(ctx context.Context, id string) (*models.ReceiptOffset, error) {
	return one[models.ReceiptOffset](ctx, c, ServiceVessel, "/receiptOffsetApply/detail", url.Values{"id": {id}})
}

func (c *Client) PaymentDetail(ctx context.Context, id string) (*models.PaymentOrder, error) {
	return one[models.PaymentOrder](ctx, c, ServiceVessel, "/paymentOrder/detail", url.Values{"id": {id}})
}
