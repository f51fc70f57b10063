package order

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
)

type SQL struct {
	conn *sqlx.DB
}

type OrderRepository interface {
	GetOrder(ctx context.Context, filter *model.OrderFilter) (*model.OrderEntity, error)
	InsertOrder(ctx context.Context, req *model.OrderEntity) (uint64, error)
	UpdateOrderStatus(ctx context.Context, orderID, accountID uint64, from, to constant.OrderStatus) (int64, error)
	ListOrders(ctx context.Context, filter *model.OrderListFilter) ([]model.OrderEntity, error)

	InsertOrderItem(ctx context.Context, item *model.OrderItemEntity) (uint64, error)
	UpdateOrderItemQuantity(ctx context.Context, orderID, itemID uint64, quantity int64) (int64, error)
	DeleteOrderItem(ctx context.Context, orderID, itemID uint64) (int64, error)
	ListOrderItems(ctx context.Context, orderIDs []uint64) ([]model.OrderItemEntity, error)
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const (
	getOrderBase      = "SELECT id, account_id, status, created_at FROM `order` WHERE 1 = 1"
	insertOrderQuery  = "INSERT INTO `order` (account_id, status, created_at) VALUES (?, ?, ?)"
	updateOrderStatus = "UPDATE `order` SET status = ? WHERE id = ? AND account_id = ? AND status = ?"
	listOrdersBase    = "SELECT o.id, o.account_id, o.status, o.created_at FROM `order` o WHERE 1 = 1"
	sellerOrdersCond  = ` AND EXISTS (SELECT 1 FROM order_item oi
JOIN product_info pi ON pi.id = oi.product_info_id
JOIN shop s ON s.id = pi.shop_id
WHERE oi.order_id = o.id AND s.account_id = ?)`

	insertOrderItemQuery = `INSERT INTO order_item (order_id, product_info_id, quantity) VALUES (?, ?, ?)`
	updateOrderItemQty   = `UPDATE order_item SET quantity = ? WHERE id = ? AND order_id = ?`
	deleteOrderItemQuery = `DELETE FROM order_item WHERE id = ? AND order_id = ?`
	listOrderItemsQuery  = `SELECT id, order_id, product_info_id, quantity FROM order_item WHERE order_id IN (?) ORDER BY order_id, id`
)

func (r *SQL) GetOrder(ctx context.Context, filter *model.OrderFilter) (*model.OrderEntity, error) {
	query := getOrderBase
	args := make([]any, 0, 3)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.AccountID != 0 {
		query += " AND account_id = ?"
		args = append(args, filter.AccountID)
	}
	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, filter.Status)
	}
	query += " ORDER BY id LIMIT 1"

	var detail model.OrderEntity
	if err := r.conn.QueryRowxContext(ctx, query, args...).StructScan(&detail); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (r *SQL) InsertOrder(ctx context.Context, req *model.OrderEntity) (uint64, error) {
	res, err := r.conn.ExecContext(ctx, insertOrderQuery, req.AccountID, req.Status, req.CreatedAt)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// UpdateOrderStatus moves an order owned by accountID from one status to
// another and reports how many rows changed.
func (r *SQL) UpdateOrderStatus(ctx context.Context, orderID, accountID uint64, from, to constant.OrderStatus) (int64, error) {
	res, err := r.conn.ExecContext(ctx, updateOrderStatus, to, orderID, accountID, from)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *SQL) ListOrders(ctx context.Context, filter *model.OrderListFilter) ([]model.OrderEntity, error) {
	query := listOrdersBase
	args := make([]any, 0, 4)

	if filter.AccountID != 0 {
		query += " AND o.account_id = ?"
		args = append(args, filter.AccountID)
	}
	if filter.SellerID != 0 {
		query += sellerOrdersCond
		args = append(args, filter.SellerID)
	}
	if filter.Status != "" {
		query += " AND o.status = ?"
		args = append(args, filter.Status)
	}
	if filter.ExcludeStatus != "" {
		query += " AND o.status <> ?"
		args = append(args, filter.ExcludeStatus)
	}
	query += " ORDER BY o.created_at, o.id"

	orders := make([]model.OrderEntity, 0)
	if err := r.conn.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *SQL) InsertOrderItem(ctx context.Context, item *model.OrderItemEntity) (uint64, error) {
	res, err := r.conn.ExecContext(ctx, insertOrderItemQuery, item.OrderID, item.ProductInfoID, item.Quantity)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) UpdateOrderItemQuantity(ctx context.Context, orderID, itemID uint64, quantity int64) (int64, error) {
	res, err := r.conn.ExecContext(ctx, updateOrderItemQty, quantity, itemID, orderID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *SQL) DeleteOrderItem(ctx context.Context, orderID, itemID uint64) (int64, error) {
	res, err := r.conn.ExecContext(ctx, deleteOrderItemQuery, itemID, orderID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *SQL) ListOrderItems(ctx context.Context, orderIDs []uint64) ([]model.OrderItemEntity, error) {
	items := make([]model.OrderItemEntity, 0)
	if len(orderIDs) == 0 {
		return items, nil
	}
	query, args, err := sqlx.In(listOrderItemsQuery, orderIDs)
	if err != nil {
		return nil, err
	}
	if err := r.conn.SelectContext(ctx, &items, r.conn.Rebind(query), args...); err != nil {
		return nil, err
	}
	return items, nil
}
