package entity

// ECSService identifies one ECS service inside a cluster.
type ECSService struct {
	ClusterName string `json:"cluster_name"`
	ServiceName string `json:"service_name"`
}

// ECRRepository identifies one ECR repository.
type ECRRepository struct {
	Name string `json:"name"`
}

// EKSCluster is a cluster with its node groups.
type EKSCluster struct {
	Name       string   `json:"name"`
	Nodegroups []string `json:"nodegroups,omitempty"`
}

// ECRLifecyclePolicy is the lifecycle policy applied to every repository:
// untagged images expire after 14 days, and at most 30 images with the
// v/release tag prefixes are retained.
const ECRLifecyclePolicy = `{
  "rules": [
    {
      "rulePriority": 1,
      "description": "Remove untagged images older than 14 days",
      "selection": {
        "tagStatus": "untagged",
        "countType": "sinceImagePushed",
        "countUnit": "days",
        "countNumber": 14
      },
      "action": {
        "type": "expire"
      }
    },
    {
      "rulePriority": 2,
      "description": "Keep only 30 tagged images",
      "selection": {
        "tagStatus": "tagged",
        "tagPrefixList": ["v", "release"],
        "countType": "imageCountMoreThan",
        "countNumber": 30
      },
      "action": {
        "type": "expire"
      }
    }
  ]
}`
