package types

// Enum values for on-chain operation kinds
type OperationType string

const (
	OperationCreateRole  OperationType = "create_role"
	OperationAssignRole  OperationType = "assign_role"
	OperationRemoveRole  OperationType = "remove_role"
	OperationBatchAssign OperationType = "batch_assign"
)

func (o OperationType) String() string {
	return string(o)
}
