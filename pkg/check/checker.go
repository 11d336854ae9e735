package check

// Checker is implemented by all single-result check types.
// Each check inspects one aspect of the cluster or its services
// and returns a Result indicating success or failure.
//
// Implementations:
//   - cmdcheck.Check: command exits successfully
//   - httpcheck.Check: endpoint answers with the expected status
//   - kubecheck.NodeReadinessCheck: all nodes report Ready
//   - kubecheck.DeploymentCheck: ready replicas match desired replicas
//   - promcheck.TargetsCheck: at least one scrape target is up
type Checker interface {
	Run() Result
}
