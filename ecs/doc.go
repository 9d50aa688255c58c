// Package ecs is the entity-component-system host the game runs on.
//
// Entities live in archetypes, one per distinct component set. Systems are
// structs with Query and Singleton fields that a Scheduler binds by
// reflection; structural changes made while iterating go through Commands
// and are applied when the frame ends or at an ApplyDeferred step. A
// FixedClock turns variable frame times into fixed simulation ticks and
// publishes how far presentation is between them.
package ecs
