// Package insights holds the static model figures shown on the model
// insights screen. Nothing here is computed; the figures are display
// fixtures.
package insights

// ModelStatus is the lifecycle state of a model.
type ModelStatus string

const (
	StatusActive   ModelStatus = "active"
	StatusTraining ModelStatus = "training"
)

// Model is a model card.
type Model struct {
	ID          string
	Name        string
	Type        string
	Accuracy    float64
	Status      ModelStatus
	Description string
	LastTrained string
	DataPoints  int
	Layers      int
	Parameters  string
}

// Layer is one layer of the network architecture.
type Layer struct {
	Name        string
	Neurons     int
	Activation  string
	Description string
}

// Trend is the direction of a prediction.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
)

// Prediction is a forecast row.
type Prediction struct {
	Metric     string
	Current    int
	Predicted  int
	Confidence int
	Trend      Trend
	Timeframe  string
}

// Setting is a labelled training figure.
type Setting struct {
	Name  string
	Value string
}

// TrainingStatus describes the current training run.
type TrainingStatus struct {
	Epoch, Epochs int
	Metrics       []Setting
	Config        []Setting
}

func Models() []Model {
	return []Model{
		{
			ID: "cognitive-load", Name: "Cognitive Load Predictor", Type: "Neural Network",
			Accuracy: 94.2, Status: StatusActive,
			Description: "Predicts cognitive workload from multimodal biomarker inputs",
			LastTrained: "2 hours ago", DataPoints: 15420, Layers: 8, Parameters: "2.3M",
		},
		{
			ID: "attention-tracker", Name: "Attention State Classifier", Type: "Transformer",
			Accuracy: 91.7, Status: StatusActive,
			Description: "Classifies attention states from behavioral patterns",
			LastTrained: "6 hours ago", DataPoints: 12890, Layers: 12, Parameters: "4.1M",
		},
		{
			ID: "fatigue-detector", Name: "Fatigue Detection Model", Type: "CNN-LSTM",
			Accuracy: 88.9, Status: StatusTraining,
			Description: "Detects early signs of cognitive fatigue",
			LastTrained: "1 day ago", DataPoints: 9340, Layers: 6, Parameters: "1.8M",
		},
		{
			ID: "performance-predictor", Name: "Performance Forecaster", Type: "Time Series",
			Accuracy: 86.4, Status: StatusActive,
			Description: "Forecasts cognitive performance trends",
			LastTrained: "4 hours ago", DataPoints: 18750, Layers: 4, Parameters: "890K",
		},
	}
}

func Architecture() []Layer {
	return []Layer{
		{Name: "Input Layer", Neurons: 128, Activation: "Linear", Description: "Biomarker feature inputs"},
		{Name: "Hidden Layer 1", Neurons: 256, Activation: "ReLU", Description: "Feature extraction"},
		{Name: "Hidden Layer 2", Neurons: 512, Activation: "ReLU", Description: "Pattern recognition"},
		{Name: "Hidden Layer 3", Neurons: 256, Activation: "ReLU", Description: "Feature combination"},
		{Name: "Hidden Layer 4", Neurons: 128, Activation: "ReLU", Description: "Dimensionality reduction"},
		{Name: "Hidden Layer 5", Neurons: 64, Activation: "ReLU", Description: "Final processing"},
		{Name: "Output Layer", Neurons: 10, Activation: "Softmax", Description: "Cognitive state classification"},
	}
}

func Predictions() []Prediction {
	return []Prediction{
		{Metric: "Cognitive Load", Current: 72, Predicted: 68, Confidence: 94, Trend: TrendDecreasing, Timeframe: "Next 30 minutes"},
		{Metric: "Attention Level", Current: 85, Predicted: 88, Confidence: 91, Trend: TrendIncreasing, Timeframe: "Next 15 minutes"},
		{Metric: "Fatigue Index", Current: 23, Predicted: 31, Confidence: 87, Trend: TrendIncreasing, Timeframe: "Next 45 minutes"},
		{Metric: "Performance Score", Current: 87, Predicted: 84, Confidence: 89, Trend: TrendDecreasing, Timeframe: "Next hour"},
	}
}

func Training() TrainingStatus {
	return TrainingStatus{
		Epoch:  47,
		Epochs: 100,
		Metrics: []Setting{
			{"Training Loss", "0.0234"},
			{"Validation Loss", "0.0298"},
			{"Training Acc", "94.2%"},
			{"Validation Acc", "91.8%"},
		},
		Config: []Setting{
			{"Optimizer", "Adam"},
			{"Learning Rate", "0.001"},
			{"Batch Size", "32"},
			{"Dropout", "0.2"},
			{"L2 Penalty", "0.0001"},
			{"Early Stopping", "Enabled"},
			{"Train Split", "80%"},
			{"Validation Split", "20%"},
			{"Augmentation", "Enabled"},
		},
	}
}

// TotalNeurons sums neurons across the architecture.
func TotalNeurons(layers []Layer) int {
	n := 0
	for _, l := range layers {
		n += l.Neurons
	}
	return n
}
