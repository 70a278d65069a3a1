package transaction

import "cliver/internal/entities"

func ToDomain(m *TransactionDB) *entities.Transaction {
	if m == nil {
		return nil
	}
	return &entities.Transaction{
		ID:            m.ID,
		UserID:        m.UserID,
		Type:          entities.TransactionTypeType(m.Type),
		Amount:        m.Amount,
		Status:        entities.TransactionStatusType(m.Status),
		PaymentMethod: m.PaymentMethod,
		Description:   m.Description,
		CreatedAt:     m.CreatedAt,
	}
}

func ToDomainList(models []TransactionDB) []entities.Transaction {
	transactions := make([]entities.Transaction, 0, len(models))
	for i := range models {
		transactions = append(transactions, *ToDomain(&models[i]))
	}
	return transactions
}
