package stream

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/animtx/tween"
)

// Streamer publishes animation snapshots over MQTT once per frame and
// listens for control messages.
type Streamer struct {
	config     Config
	client     mqtt.Client
	controller *Controller
}

// NewStreamer creates a Streamer with animators built from config.
func NewStreamer(config Config, client mqtt.Client) (*Streamer, error) {
	s := new(Streamer)
	s.config = config
	s.client = client

	controller, err := NewController(tween.NewDisplay(config.FrameInterval()), config.Animations)
	if err != nil {
		return nil, err
	}
	s.controller = controller

	return s, nil
}

// Controller exposes the animation registry, used by the API server.
func (s *Streamer) Controller() *Controller {
	return s.controller
}

// Subscribe starts listening for control messages.
func (s *Streamer) Subscribe() {
	if token := s.client.Subscribe(s.config.Mqtt.Topics.Control, 0, s.handleControlMessage); token.Wait() && token.Error() != nil {
		log.Println(token.Error())
		os.Exit(1)
	}
}

func (s *Streamer) handleControlMessage(client mqtt.Client, msg mqtt.Message) {
	var message ControlMessage
	if err := json.Unmarshal(msg.Payload(), &message); err != nil {
		log.Printf("Bad control message on %s: %v", msg.Topic(), err)
		return
	}

	if err := s.controller.Handle(message); err != nil {
		log.Printf("Control message rejected: %v", err)
	}
}

// SendSnapshot publishes the current state of every animation as JSON.
func (s *Streamer) SendSnapshot() {
	b, err := json.Marshal(s.controller.Snapshot())
	if err != nil {
		log.Printf("Snapshot marshal failed: %v", err)
		return
	}

	token := s.client.Publish(s.config.Mqtt.Topics.Stream, 0, false, b)
	token.Wait()
}

// Run causes the Streamer to publish snapshots continuously.
func (s *Streamer) Run() {
	publishTimer := time.NewTicker(s.config.FrameInterval())
	for {
		<-publishTimer.C
		s.SendSnapshot()
	}
}
