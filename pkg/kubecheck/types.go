package kubecheck

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformed is wrapped by every decode error: the output was not JSON
// or lacked a field the check depends on.
var ErrMalformed = errors.New("malformed resource")

// ObjectMeta is the subset of object metadata the checks read.
type ObjectMeta struct {
	Name      string `json:"name"`
	Namespace string `json:"namespace,omitempty"`
}

// NodeCondition is one entry of a node's status.conditions.
type NodeCondition struct {
	Type   string `json:"type"`
	Status string `json:"status"`
}

// NodeStatus holds a node's reported conditions.
type NodeStatus struct {
	Conditions []NodeCondition `json:"conditions"`
}

// Node is a cluster node as printed by `kubectl get nodes -o json`.
type Node struct {
	Metadata ObjectMeta  `json:"metadata"`
	Status   *NodeStatus `json:"status"`
}

// Ready reports whether the node has a Ready condition with status True.
func (n Node) Ready() bool {
	if n.Status == nil {
		return false
	}
	for _, c := range n.Status.Conditions {
		if c.Type == "Ready" && c.Status == "True" {
			return true
		}
	}
	return false
}

// NodeList is the list envelope of `kubectl get nodes -o json`.
type NodeList struct {
	Items []Node `json:"items"`
}

// ReadyCount returns how many nodes are ready.
func (l NodeList) ReadyCount() int {
	ready := 0
	for _, n := range l.Items {
		if n.Ready() {
			ready++
		}
	}
	return ready
}

// DecodeNodeList parses node list output. The items array and every node's
// status.conditions must be present.
func DecodeNodeList(data []byte) (*NodeList, error) {
	var wire struct {
		Items *[]Node `json:"items"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if wire.Items == nil {
		return nil, fmt.Errorf("%w: node list has no items", ErrMalformed)
	}
	for i, n := range *wire.Items {
		if n.Status == nil || n.Status.Conditions == nil {
			return nil, fmt.Errorf("%w: node %d (%s) has no status.conditions", ErrMalformed, i, n.Metadata.Name)
		}
	}
	return &NodeList{Items: *wire.Items}, nil
}

// DeploymentSpec holds the desired replica count.
type DeploymentSpec struct {
	Replicas *int `json:"replicas"`
}

// DeploymentStatus holds the observed replica counts.
// ReadyReplicas is omitted by the API server when zero.
type DeploymentStatus struct {
	ReadyReplicas int `json:"readyReplicas"`
}

// Deployment is a workload as printed by `kubectl get deployment -o json`.
type Deployment struct {
	Metadata ObjectMeta        `json:"metadata"`
	Spec     *DeploymentSpec   `json:"spec"`
	Status   *DeploymentStatus `json:"status"`
}

// Desired returns spec.replicas. Only valid on a decoded deployment.
func (d Deployment) Desired() int {
	return *d.Spec.Replicas
}

// Ready returns status.readyReplicas.
func (d Deployment) Ready() int {
	return d.Status.ReadyReplicas
}

// DecodeDeployment parses deployment output. spec.replicas and the status
// object must be present.
func DecodeDeployment(data []byte) (*Deployment, error) {
	var d Deployment
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if d.Spec == nil || d.Spec.Replicas == nil {
		return nil, fmt.Errorf("%w: deployment has no spec.replicas", ErrMalformed)
	}
	if d.Status == nil {
		return nil, fmt.Errorf("%w: deployment has no status", ErrMalformed)
	}
	return &d, nil
}

// UnknownPhase is reported when a database cluster has no phase yet.
const UnknownPhase = "Unknown"

// DatabaseClusterStatus is the status block of a CloudNativePG Cluster.
type DatabaseClusterStatus struct {
	Instances      int    `json:"instances"`
	ReadyInstances int    `json:"readyInstances"`
	Phase          string `json:"phase"`
}

// DatabaseCluster is the Cluster custom resource managed by the database
// operator.
type DatabaseCluster struct {
	Metadata ObjectMeta            `json:"metadata"`
	Status   DatabaseClusterStatus `json:"status"`
}

// Healthy reports whether every instance is ready and there is at least one.
func (c DatabaseCluster) Healthy() bool {
	return c.Status.Instances > 0 && c.Status.ReadyInstances == c.Status.Instances
}

// DecodeDatabaseCluster parses custom resource output. A missing status
// decodes as zero instances; a missing phase decodes as UnknownPhase while
// an empty one is kept as is.
func DecodeDatabaseCluster(data []byte) (*DatabaseCluster, error) {
	var wire struct {
		Metadata ObjectMeta `json:"metadata"`
		Status   struct {
			Instances      int     `json:"instances"`
			ReadyInstances int     `json:"readyInstances"`
			Phase          *string `json:"phase"`
		} `json:"status"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	phase := UnknownPhase
	if wire.Status.Phase != nil {
		phase = *wire.Status.Phase
	}
	return &DatabaseCluster{
		Metadata: wire.Metadata,
		Status: DatabaseClusterStatus{
			Instances:      wire.Status.Instances,
			ReadyInstances: wire.Status.ReadyInstances,
			Phase:          phase,
		},
	}, nil
}
